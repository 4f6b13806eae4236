package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// CheckUpdates is the interface for the check-updates command.
type CheckUpdates interface {
	Execute(ctx context.Context, opts CheckUpdatesOptions) ([]entities.PackageUpdateItem, error)
}

// CheckUpdatesOptions holds the options of the check-updates command.
type CheckUpdatesOptions struct {
	Download bool // Download the updates when there are any
}

// CheckUpdatesCommand lists available updates and optionally downloads them.
type CheckUpdatesCommand struct {
	settings repositories.SettingsRepository
	backends repositories.PackageManagerFactory
}

// NewCheckUpdatesCommand creates a new CheckUpdatesCommand.
func NewCheckUpdatesCommand(
	settings repositories.SettingsRepository,
	backends repositories.PackageManagerFactory,
) *CheckUpdatesCommand {
	return &CheckUpdatesCommand{settings: settings, backends: backends}
}

func (it *CheckUpdatesCommand) Execute(
	ctx context.Context,
	opts CheckUpdatesOptions,
) ([]entities.PackageUpdateItem, error) {
	settings, err := it.settings.LoadSettings()
	if err != nil {
		return nil, err
	}

	backend, err := it.backends.Get(settings.Package)
	if err != nil {
		return nil, err
	}

	logger.Infof("Checking for updates with %s...", backend.Name())
	items, err := backend.CheckUpdate(ctx)
	if err != nil {
		return nil, err
	}

	if opts.Download && len(items) > 0 {
		logger.Infof("Downloading %d package(s)...", len(items))
		if err = backend.DownloadUpdate(ctx); err != nil {
			return items, err
		}
	}

	return items, nil
}
