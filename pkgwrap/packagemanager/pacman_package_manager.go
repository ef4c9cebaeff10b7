package packagemanager

import (
	"context"

	cm "github.com/steelcutops/pkgwrap/pkgwrap/commandmanager"
)

type PacmanPackageManager struct {
	CommandManager cm.CommandManager
	ConfigPath     string
}

func (ppm *PacmanPackageManager) Name() string {
	return "pacman"
}

func (ppm *PacmanPackageManager) InstallPackages(ctx context.Context, pkgs []string) (cm.CommandResult, error) {
	return ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Args:    append([]string{"-S", "--noconfirm", "--config", ppm.ConfigPath}, pkgs...),
	})
}

func (ppm *PacmanPackageManager) RemovePackages(ctx context.Context, pkgs []string) (cm.CommandResult, error) {
	return ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Args:    append([]string{"-R", "--noconfirm", "--config", ppm.ConfigPath}, pkgs...),
	})
}

func (ppm *PacmanPackageManager) UpgradeAll(ctx context.Context) (cm.CommandResult, error) {
	return ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Args:    []string{"-Syu", "--noconfirm", "--config", ppm.ConfigPath},
	})
}

func (ppm *PacmanPackageManager) ListInstalled(ctx context.Context) (cm.CommandResult, error) {
	return ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Args:    []string{"-Q", "--config", ppm.ConfigPath},
	})
}
