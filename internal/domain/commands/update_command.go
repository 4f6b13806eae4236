package commands

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// Update is the interface for the update command.
type Update interface {
	Execute(ctx context.Context, opts UpdateOptions) error
}

// UpdateOptions holds the options of the update command.
type UpdateOptions struct {
	Interactive bool
}

// UpdateCommand applies the updates and records when it happened, so the
// next changelog run only shows newer entries.
type UpdateCommand struct {
	settings repositories.SettingsRepository
	backends repositories.PackageManagerFactory
	now      func() time.Time
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(
	settings repositories.SettingsRepository,
	backends repositories.PackageManagerFactory,
) *UpdateCommand {
	return &UpdateCommand{settings: settings, backends: backends, now: time.Now}
}

func (it *UpdateCommand) Execute(ctx context.Context, opts UpdateOptions) error {
	settings, err := it.settings.LoadSettings()
	if err != nil {
		return err
	}

	backend, err := it.backends.Get(settings.Package)
	if err != nil {
		return err
	}

	if err = backend.DoUpdate(ctx, opts.Interactive); err != nil {
		return err
	}

	timestamp := uint64(it.now().Unix()) //nolint:gosec // wall clock is after 1970
	logger.Debugf("Recording update timestamp %d", timestamp)
	return it.settings.SaveData(&entities.Data{UpdateTimestamp: timestamp})
}
