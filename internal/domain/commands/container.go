package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		// Register command constructors
		NewInitCommand,
		NewChangelogCommand,
		NewCheckUpdatesCommand,
		NewUpdateCommand,

		// Bind interfaces to implementations
		func(impl *InitCommand) Init { return impl },
		func(impl *ChangelogCommand) Changelog { return impl },
		func(impl *CheckUpdatesCommand) CheckUpdates { return impl },
		func(impl *UpdateCommand) Update { return impl },
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}
