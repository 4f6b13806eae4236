//go:build unit

package packagemanager_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/packagemanager"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/rpm"
	"github.com/rios0rios0/package-assistant/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/package-assistant/test/infrastructure/repositorydoubles"
)

// newCacheWithEpelRelease lays out a cache holding a real package in a
// subdirectory next to a file that is not a package.
func newCacheWithEpelRelease(t *testing.T) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "rpm", "testdata", "epel-release-7-5.noarch.rpm"))
	require.NoError(t, err)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "epel.rpm"), raw, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "junk.rpm"), []byte("not a package"), 0o600))
	return root
}

func newBaseOverCache(root string) *packagemanager.Base {
	config := entitybuilders.NewPackageConfigBuilder().WithCachedPackagePath(root).BuildPackageConfig()
	return packagemanager.NewBase(config, &doubles.SpyCommandRepository{}, rpm.NewArchiveRepository(), nil)
}

func TestBaseCachedChangelogsWithRPMArchives(t *testing.T) {
	t.Parallel()

	t.Run("should render the entries newer than the last update", func(t *testing.T) {
		t.Parallel()

		// given
		base := newBaseOverCache(newCacheWithEpelRelease(t))

		// when
		output, err := base.CachedChangelogs(context.Background(), entities.ChangelogQuery{}, 1416916799)

		// then
		require.NoError(t, err)
		assert.Equal(t, "==== epel-release ====\n- fix typo in macros.epel", output)
	})

	t.Run("should keep header order for every entry past the threshold", func(t *testing.T) {
		t.Parallel()

		// given
		base := newBaseOverCache(newCacheWithEpelRelease(t))

		// when
		output, err := base.CachedChangelogs(context.Background(), entities.ChangelogQuery{Name: "epel"}, 1416571199)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"==== epel-release ====\n- fix typo in macros.epel\n- add systemd 90-epel.preset\n- implement %epel macro",
			output,
		)
	})

	t.Run("should exclude an entry dated exactly at the threshold", func(t *testing.T) {
		t.Parallel()

		// given
		base := newBaseOverCache(newCacheWithEpelRelease(t))

		// when
		_, err := base.CachedChangelogs(context.Background(), entities.ChangelogQuery{}, 1416916800)

		// then
		require.ErrorIs(t, err, entities.ErrNoChangelogsInDirectory)
	})

	t.Run("should match the query prefix case-sensitively", func(t *testing.T) {
		t.Parallel()

		// given
		base := newBaseOverCache(newCacheWithEpelRelease(t))

		// when
		_, err := base.CachedChangelogs(context.Background(), entities.ChangelogQuery{Name: "Epel"}, 0)

		// then
		require.ErrorIs(t, err, entities.ErrNoChangelogsInDirectory)
	})
}
