package packagemanager

import (
	"context"

	cm "github.com/steelcutops/pkgwrap/pkgwrap/commandmanager"
)

type AptPackageManager struct {
	CommandManager cm.CommandManager
	ConfigPath     string
}

var aptNoninteractiveEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

func (apm *AptPackageManager) Name() string {
	return "apt"
}

func (apm *AptPackageManager) InstallPackages(ctx context.Context, pkgs []string) (cm.CommandResult, error) {
	args := append([]string{
		"-c", apm.ConfigPath,
		"install", "-y",
		"-o", "Dpkg::Options::=--force-confdef",
		"-o", "Dpkg::Options::=--force-confold",
	}, pkgs...)
	return apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Env:     aptNoninteractiveEnv,
		Args:    args,
	})
}

func (apm *AptPackageManager) RemovePackages(ctx context.Context, pkgs []string) (cm.CommandResult, error) {
	return apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Args:    append([]string{"-c", apm.ConfigPath, "remove", "-y"}, pkgs...),
	})
}

// UpgradeAll refreshes the index first; the upgrade only runs when the
// refresh succeeded, and the first non-zero result is what gets reported.
// Once the upgrade runs, the returned result spans both calls.
func (apm *AptPackageManager) UpgradeAll(ctx context.Context) (cm.CommandResult, error) {
	update, err := apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Args:    []string{"-c", apm.ConfigPath, "update"},
	})
	if err != nil || update.ExitCode != 0 {
		return update, err
	}

	result, err := apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Env:     aptNoninteractiveEnv,
		Args: []string{
			"-c", apm.ConfigPath,
			"upgrade", "-y",
			"-o", "Dpkg::Options::=--force-confdef",
			"-o", "Dpkg::Options::=--force-confold",
		},
	})

	result.STDOUT = update.STDOUT + result.STDOUT
	result.STDERR = update.STDERR + result.STDERR
	result.Duration += update.Duration
	result.Timestamp = update.Timestamp
	return result, err
}

func (apm *AptPackageManager) ListInstalled(ctx context.Context) (cm.CommandResult, error) {
	return apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt",
		Args:    []string{"-c", apm.ConfigPath, "list", "--installed"},
	})
}
