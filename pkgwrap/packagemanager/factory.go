package packagemanager

import (
	"fmt"
	"os/exec"

	multierror "github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	cm "github.com/steelcutops/pkgwrap/pkgwrap/commandmanager"
)

// Probe order is fixed: dnf wins over pacman, pacman over apt.
var managerPriority = []string{"dnf", "pacman", "apt"}

// Detect returns the name of the first supported package manager found on
// PATH, or the aggregated probe errors when none is.
func Detect() (string, error) {
	var probeErrs *multierror.Error
	for _, name := range managerPriority {
		path, err := exec.LookPath(name)
		if err != nil {
			probeErrs = multierror.Append(probeErrs, err)
			continue
		}
		log.Debugf("detected package manager %s at %s", name, path)
		return name, nil
	}
	return "", probeErrs.ErrorOrNil()
}

// New builds the wrapper for the named manager. The returned manager runs
// every operation against the configuration copy at configPath.
func New(name string, manager cm.CommandManager, configPath string) (PackageManager, error) {
	switch name {
	case "pacman":
		return &PacmanPackageManager{CommandManager: manager, ConfigPath: configPath}, nil
	case "dnf":
		return &DnfPackageManager{CommandManager: manager, ConfigPath: configPath}, nil
	case "apt":
		return &AptPackageManager{CommandManager: manager, ConfigPath: configPath}, nil
	default:
		return nil, fmt.Errorf("unsupported package manager: %s", name)
	}
}
