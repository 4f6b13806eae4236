//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/package-assistant/internal/domain/commands"
	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	doubles "github.com/rios0rios0/package-assistant/test/infrastructure/repositorydoubles"
)

func fixedClock() time.Time {
	return time.Unix(1_700_000_000, 0)
}

func TestUpdateCommand(t *testing.T) {
	t.Parallel()

	t.Run("should apply the updates interactively and record the time", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &doubles.InMemorySettingsRepository{Settings: entities.NewSettings(entities.BackendZypper)}
		backend := &doubles.SpyPackageManagerRepository{}
		command := commands.NewUpdateCommandWithClock(settings, &doubles.StubPackageManagerFactory{Backend: backend}, fixedClock)

		// when
		err := command.Execute(context.Background(), commands.UpdateOptions{Interactive: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, []bool{true}, backend.DoUpdateCalls)
		assert.Equal(t, []entities.Data{{UpdateTimestamp: 1_700_000_000}}, settings.SavedData)
	})

	t.Run("should run without confirmation when not interactive", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &doubles.InMemorySettingsRepository{Settings: entities.NewSettings(entities.BackendDnf)}
		backend := &doubles.SpyPackageManagerRepository{}
		command := commands.NewUpdateCommandWithClock(settings, &doubles.StubPackageManagerFactory{Backend: backend}, fixedClock)

		// when
		err := command.Execute(context.Background(), commands.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []bool{false}, backend.DoUpdateCalls)
	})

	t.Run("should not record the time when the update fails", func(t *testing.T) {
		t.Parallel()

		// given
		failure := &entities.CommandError{Kind: entities.CommandKindUpdate, ExitCode: 126}
		settings := &doubles.InMemorySettingsRepository{Settings: entities.NewSettings(entities.BackendZypper)}
		backend := &doubles.SpyPackageManagerRepository{DoUpdateErr: failure}
		command := commands.NewUpdateCommandWithClock(settings, &doubles.StubPackageManagerFactory{Backend: backend}, fixedClock)

		// when
		err := command.Execute(context.Background(), commands.UpdateOptions{Interactive: true})

		// then
		require.ErrorIs(t, err, failure)
		assert.Empty(t, settings.SavedData)
	})

	t.Run("should report a failure to record the time", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &doubles.InMemorySettingsRepository{
			Settings:    entities.NewSettings(entities.BackendZypper),
			SaveDataErr: entities.ErrDirectoryUndefined,
		}
		backend := &doubles.SpyPackageManagerRepository{}
		command := commands.NewUpdateCommandWithClock(settings, &doubles.StubPackageManagerFactory{Backend: backend}, fixedClock)

		// when
		err := command.Execute(context.Background(), commands.UpdateOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrDirectoryUndefined)
	})
}
