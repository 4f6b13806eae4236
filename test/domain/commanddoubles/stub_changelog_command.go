//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/commands"
)

// StubChangelogCommand is a stub implementation of commands.Changelog.
type StubChangelogCommand struct {
	ExecuteCallCount int
	ExecuteResult    string
	ExecuteErr       error
	LastOpts         commands.ChangelogOptions
}

var _ commands.Changelog = (*StubChangelogCommand)(nil)

func (s *StubChangelogCommand) Execute(_ context.Context, opts commands.ChangelogOptions) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
