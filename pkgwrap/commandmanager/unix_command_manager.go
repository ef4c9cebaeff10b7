package commandmanager

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// UnixCommandManager runs commands on the local system.
type UnixCommandManager struct{}

func (u *UnixCommandManager) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	if len(config.Env) > 0 {
		cmd.Env = append(os.Environ(), config.Env...)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("running %s %s", config.Command, strings.Join(config.Args, " "))
	err := cmd.Run()

	duration := time.Since(start)
	result := CommandResult{
		Command:   config.Command,
		STDOUT:    stdout.String(),
		STDERR:    stderr.String(),
		ExitCode:  getExitCode(err),
		Duration:  duration,
		Timestamp: start,
	}
	log.Debugf("%s finished with exit code %d after %s", config.Command, result.ExitCode, result.Duration)

	return result, err
}

func getExitCode(err error) int {
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			status := exitError.Sys().(syscall.WaitStatus)
			return status.ExitStatus()
		}
	}
	return 0
}
