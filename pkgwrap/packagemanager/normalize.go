package packagemanager

import (
	log "github.com/sirupsen/logrus"
)

// Normalize maps a manager's raw exit code onto the wrapper's binary
// success/failure contract: 0 stays 0, everything else becomes 1.
func Normalize(exitCode int, manager string) int {
	switch manager {
	case "pacman", "dnf", "apt":
		if exitCode == 0 {
			return 0
		}
		return 1
	default:
		log.Errorf("cannot normalize exit code %d: unsupported package manager %q", exitCode, manager)
		return 1
	}
}
