//go:build unit

package dnf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/dnf"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/packagemanager"
	"github.com/rios0rios0/package-assistant/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/package-assistant/test/infrastructure/repositorydoubles"
)

const checkUpdateOutput = `Last metadata expiration check: 0:12:31 ago on Mon 14 Oct 2024 09:00:00.

bash.x86_64                          5.2.26-3.fc40                  updates
kernel-core.x86_64                   6.10.12-200.fc40               updates
firefox.x86_64                       131.0-1.fc40                   updates-testing
`

func newRepository(commands *doubles.SpyCommandRepository) *dnf.PackageManagerRepository {
	config := entitybuilders.NewPackageConfigBuilder().
		WithPackageManager(entities.BackendDnf).
		WithCachedPackagePath("/var/cache/dnf").
		BuildPackageConfig()
	base := packagemanager.NewBase(config, commands, &doubles.StubArchiveRepository{}, nil)
	return dnf.NewPackageManagerRepository(base).(*dnf.PackageManagerRepository)
}

func TestParseUpdates(t *testing.T) {
	t.Parallel()

	t.Run("should yield the name and new version without an old version", func(t *testing.T) {
		t.Parallel()

		// given
		output := "bash.x86_64        5.2-1    updates"

		// when
		items := dnf.ParseUpdates(output)

		// then
		assert.Equal(t, []entities.PackageUpdateItem{{Name: "bash.x86_64", NewVersion: "5.2-1"}}, items)
	})

	t.Run("should only match lines from the updates repository", func(t *testing.T) {
		t.Parallel()

		// given
		output := checkUpdateOutput

		// when
		items := dnf.ParseUpdates(output)

		// then
		assert.Equal(t, []entities.PackageUpdateItem{
			{Name: "bash.x86_64", NewVersion: "5.2.26-3.fc40"},
			{Name: "kernel-core.x86_64", NewVersion: "6.10.12-200.fc40"},
		}, items)
	})

	t.Run("should return an empty list when nothing matches", func(t *testing.T) {
		t.Parallel()

		// given
		output := "Last metadata expiration check: 0:00:01 ago.\n"

		// when
		items := dnf.ParseUpdates(output)

		// then
		assert.Empty(t, items)
	})
}

func TestPackageManagerRepositoryCheckUpdate(t *testing.T) {
	t.Parallel()

	t.Run("should parse the output of a successful run", func(t *testing.T) {
		t.Parallel()

		// given
		commands := &doubles.SpyCommandRepository{Stdout: map[string]string{"dnf check-update": "bash.x86_64 5.2-1 updates\n"}}
		repo := newRepository(commands)

		// when
		items, err := repo.CheckUpdate(context.Background())

		// then
		require.NoError(t, err)
		assert.Len(t, items, 1)
		require.Len(t, commands.Calls, 1)
		assert.False(t, commands.Calls[0].Elevate)
		assert.Equal(t, entities.CommandKindDnf, commands.Calls[0].Kind)
		assert.Equal(t, "dnf", repo.Name())
	})

	t.Run("should treat exit status 100 as updates available", func(t *testing.T) {
		t.Parallel()

		// given
		commands := &doubles.SpyCommandRepository{DefaultErr: &entities.CommandError{
			Kind:     entities.CommandKindDnf,
			Stdout:   checkUpdateOutput,
			ExitCode: 100,
		}}
		repo := newRepository(commands)

		// when
		items, err := repo.CheckUpdate(context.Background())

		// then
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("should degrade any other failure to no updates", func(t *testing.T) {
		t.Parallel()

		// given
		commands := &doubles.SpyCommandRepository{DefaultErr: &entities.CommandError{
			Kind:     entities.CommandKindDnf,
			Stdout:   checkUpdateOutput,
			Stderr:   "Error: Failed to download metadata for repo 'updates'",
			ExitCode: 1,
		}}
		repo := newRepository(commands)

		// when
		items, err := repo.CheckUpdate(context.Background())

		// then
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("should degrade a non-command failure to no updates", func(t *testing.T) {
		t.Parallel()

		// given
		commands := &doubles.SpyCommandRepository{DefaultErr: entities.ErrInvalidOutputEncoding}
		repo := newRepository(commands)

		// when
		items, err := repo.CheckUpdate(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
