package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		// Register controller constructors
		NewInitController,
		NewChangelogController,
		NewCheckUpdatesController,
		NewUpdateController,
		NewControllers,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	initController *InitController,
	changelogController *ChangelogController,
	checkUpdatesController *CheckUpdatesController,
	updateController *UpdateController,
) *[]entities.Controller {
	return &[]entities.Controller{
		initController,
		changelogController,
		checkUpdatesController,
		updateController,
	}
}
