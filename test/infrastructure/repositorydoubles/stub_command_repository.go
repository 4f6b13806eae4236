//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations. No mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// SpyCommandRepository implements repositories.CommandRepository as a configurable spy.
// Like the real executor it rejects empty command lines.
type SpyCommandRepository struct {
	// --- Run ---
	Stdout        map[string]string // command line -> stdout
	Errs          map[string]error  // command line -> error
	DefaultStdout string
	DefaultErr    error
	Calls         []entities.ShellCommand

	// --- RunInteractive ---
	InteractiveErr   error
	InteractiveCalls []entities.ShellCommand
}

var _ repositories.CommandRepository = (*SpyCommandRepository)(nil)

func (s *SpyCommandRepository) Run(_ context.Context, command entities.ShellCommand) (string, error) {
	if command.Line == "" {
		return "", entities.ErrEmptyCommand
	}
	s.Calls = append(s.Calls, command)
	if err, ok := s.Errs[command.Line]; ok {
		return "", err
	}
	if stdout, ok := s.Stdout[command.Line]; ok {
		return stdout, nil
	}
	return s.DefaultStdout, s.DefaultErr
}

func (s *SpyCommandRepository) RunInteractive(_ context.Context, command entities.ShellCommand) error {
	if command.Line == "" {
		return entities.ErrEmptyCommand
	}
	s.InteractiveCalls = append(s.InteractiveCalls, command)
	return s.InteractiveErr
}
