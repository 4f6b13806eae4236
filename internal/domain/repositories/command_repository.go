package repositories

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// CommandRepository runs shell command lines on the host.
type CommandRepository interface {
	// Run executes the command and returns its standard output. A nonzero exit
	// status is reported as *entities.CommandError carrying the standard error.
	Run(ctx context.Context, command entities.ShellCommand) (string, error)

	// RunInteractive executes the command attached to the caller's terminal
	// and only reports whether it exited successfully.
	RunInteractive(ctx context.Context, command entities.ShellCommand) error
}
