//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/commands"
	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// StubCheckUpdatesCommand is a stub implementation of commands.CheckUpdates.
type StubCheckUpdatesCommand struct {
	ExecuteCallCount int
	ExecuteResult    []entities.PackageUpdateItem
	ExecuteErr       error
	LastOpts         commands.CheckUpdatesOptions
}

var _ commands.CheckUpdates = (*StubCheckUpdatesCommand)(nil)

func (s *StubCheckUpdatesCommand) Execute(
	_ context.Context,
	opts commands.CheckUpdatesOptions,
) ([]entities.PackageUpdateItem, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
