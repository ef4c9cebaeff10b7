package commandmanager

import (
	"context"
	"time"
)

// CommandConfig describes a single external command invocation. Args go to
// the process as-is; nothing is routed through a shell.
type CommandConfig struct {
	Command string
	Args    []string
	Env     []string // extra KEY=value pairs appended to the inherited environment
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command   string
	STDOUT    string
	STDERR    string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time
}

// CommandManager provides methods to execute commands on the system.
type CommandManager interface {
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)
}
