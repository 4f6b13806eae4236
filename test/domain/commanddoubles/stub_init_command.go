//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/package-assistant/internal/domain/commands"
)

// StubInitCommand is a stub implementation of commands.Init.
type StubInitCommand struct {
	ExecuteCallCount int
	ExecuteResult    string
	ExecuteErr       error
	LastOpts         commands.InitOptions
}

var _ commands.Init = (*StubInitCommand)(nil)

func (s *StubInitCommand) Execute(opts commands.InitOptions) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
