package packagemanager

import (
	"context"

	cm "github.com/steelcutops/pkgwrap/pkgwrap/commandmanager"
)

// PackageManager is one normalized front over a system package manager.
// Every method maps to a single manager invocation (apt's UpgradeAll is the
// two-call exception) and returns the raw result for exit-code
// normalization.
type PackageManager interface {
	Name() string
	InstallPackages(ctx context.Context, pkgs []string) (cm.CommandResult, error)
	RemovePackages(ctx context.Context, pkgs []string) (cm.CommandResult, error)
	UpgradeAll(ctx context.Context) (cm.CommandResult, error)
	ListInstalled(ctx context.Context) (cm.CommandResult, error)
}
