package commands

import (
	"time"

	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// NewUpdateCommandWithClock exports an UpdateCommand with a fixed clock for testing.
func NewUpdateCommandWithClock(
	settings repositories.SettingsRepository,
	backends repositories.PackageManagerFactory,
	now func() time.Time,
) *UpdateCommand {
	return &UpdateCommand{settings: settings, backends: backends, now: now}
}
