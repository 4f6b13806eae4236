package commands

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// Changelog is the interface for the changelog command.
type Changelog interface {
	Execute(ctx context.Context, opts ChangelogOptions) (string, error)
}

// ChangelogOptions holds the options of the changelog command.
type ChangelogOptions struct {
	Query string // Package name prefix, empty for every package
}

// ChangelogCommand shows the changelog entries of cached packages that are
// newer than the last update.
type ChangelogCommand struct {
	settings repositories.SettingsRepository
	backends repositories.PackageManagerFactory
}

// NewChangelogCommand creates a new ChangelogCommand.
func NewChangelogCommand(
	settings repositories.SettingsRepository,
	backends repositories.PackageManagerFactory,
) *ChangelogCommand {
	return &ChangelogCommand{settings: settings, backends: backends}
}

func (it *ChangelogCommand) Execute(ctx context.Context, opts ChangelogOptions) (string, error) {
	settings, err := it.settings.LoadSettings()
	if err != nil {
		return "", err
	}
	data, err := it.settings.LoadData()
	if err != nil {
		return "", err
	}

	backend, err := it.backends.Get(settings.Package)
	if err != nil {
		return "", err
	}

	return backend.CachedChangelogs(ctx, entities.ChangelogQuery{Name: opts.Query}, data.UpdateTimestamp)
}
