package packagemanager

import (
	"context"

	cm "github.com/steelcutops/pkgwrap/pkgwrap/commandmanager"
)

type DnfPackageManager struct {
	CommandManager cm.CommandManager
	ConfigPath     string
}

func (dpm *DnfPackageManager) Name() string {
	return "dnf"
}

func (dpm *DnfPackageManager) InstallPackages(ctx context.Context, pkgs []string) (cm.CommandResult, error) {
	return dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Args:    append([]string{"--config", dpm.ConfigPath, "install", "-y"}, pkgs...),
	})
}

func (dpm *DnfPackageManager) RemovePackages(ctx context.Context, pkgs []string) (cm.CommandResult, error) {
	return dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Args:    append([]string{"--config", dpm.ConfigPath, "remove", "-y"}, pkgs...),
	})
}

// UpgradeAll refreshes the metadata and upgrades in one call.
func (dpm *DnfPackageManager) UpgradeAll(ctx context.Context) (cm.CommandResult, error) {
	return dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Args:    []string{"--config", dpm.ConfigPath, "upgrade", "--refresh", "-y"},
	})
}

func (dpm *DnfPackageManager) ListInstalled(ctx context.Context) (cm.CommandResult, error) {
	return dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Args:    []string{"--config", dpm.ConfigPath, "list", "installed"},
	})
}
