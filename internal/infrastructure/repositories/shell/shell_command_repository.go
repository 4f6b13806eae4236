package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

const (
	defaultShell = "sh"

	// DefaultElevationHelper is the polkit helper that asks for privileges.
	DefaultElevationHelper = "pkexec"
)

// CommandRepository runs command lines through `sh -c`, optionally behind a
// privilege-elevation helper.
type CommandRepository struct {
	shell           string
	elevationHelper string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCommandRepository creates a CommandRepository that elevates with the
// given helper (DefaultElevationHelper when empty) and attaches interactive
// commands to the process's standard streams.
func NewCommandRepository(elevationHelper string) *CommandRepository {
	if elevationHelper == "" {
		elevationHelper = DefaultElevationHelper
	}
	return &CommandRepository{
		shell:           defaultShell,
		elevationHelper: elevationHelper,
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
	}
}

// Run executes the command and captures its output.
func (it *CommandRepository) Run(ctx context.Context, command entities.ShellCommand) (string, error) {
	if command.Line == "" {
		return "", entities.ErrEmptyCommand
	}

	line := it.commandLine(command)
	logger.Debugf("[shell] Running %q", line)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, it.shell, "-c", line)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if !utf8.Valid(stdout.Bytes()) || !utf8.Valid(stderr.Bytes()) {
		return "", fmt.Errorf("%w: %s", entities.ErrInvalidOutputEncoding, line)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return "", &entities.CommandError{
				Kind:     command.Kind,
				Stdout:   stdout.String(),
				Stderr:   strings.TrimSpace(stderr.String()),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return "", fmt.Errorf("failed to start %q: %w", line, runErr)
	}

	if stderr.Len() > 0 {
		logger.Debugf("[shell] %q wrote to stderr: %s", line, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// RunInteractive executes the command attached to the terminal and waits for it.
func (it *CommandRepository) RunInteractive(ctx context.Context, command entities.ShellCommand) error {
	if command.Line == "" {
		return entities.ErrEmptyCommand
	}

	line := it.commandLine(command)
	logger.Debugf("[shell] Running %q interactively", line)

	cmd := exec.CommandContext(ctx, it.shell, "-c", line)
	cmd.Stdin = it.stdin
	cmd.Stdout = it.stdout
	cmd.Stderr = it.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &entities.CommandError{Kind: command.Kind, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to start %q: %w", line, err)
	}

	return nil
}

func (it *CommandRepository) commandLine(command entities.ShellCommand) string {
	if command.Elevate {
		return it.elevationHelper + " " + command.Line
	}
	return command.Line
}
