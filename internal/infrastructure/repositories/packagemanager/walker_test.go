//go:build unit

package packagemanager_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/packagemanager"
)

func renderByName(blocks map[string]string) packagemanager.PackageRenderer {
	return func(path string) (string, error) {
		if block, ok := blocks[filepath.Base(path)]; ok {
			return block, nil
		}
		return "", errors.New("unreadable")
	}
}

func TestWalkChangelogs(t *testing.T) {
	t.Parallel()

	t.Run("should join successful blocks with a blank line in directory order", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		touch(t, filepath.Join(root, "a.rpm"))
		touch(t, filepath.Join(root, "b.rpm"))
		touch(t, filepath.Join(root, "c.rpm"))
		render := renderByName(map[string]string{"a.rpm": "==== a ====\n1", "c.rpm": "==== c ====\n3"})

		// when
		output, err := packagemanager.WalkChangelogs(root, render)

		// then
		require.NoError(t, err)
		assert.Equal(t, "==== a ====\n1\n\n==== c ====\n3", output)
	})

	t.Run("should descend into subdirectories", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		touch(t, filepath.Join(root, "repo-oss", "x86_64", "a.rpm"))
		touch(t, filepath.Join(root, "repo-update", "noarch", "b.rpm"))
		render := renderByName(map[string]string{"a.rpm": "A", "b.rpm": "B"})

		// when
		output, err := packagemanager.WalkChangelogs(root, render)

		// then
		require.NoError(t, err)
		assert.Equal(t, "A\n\nB", output)
	})

	t.Run("should skip subdirectories with nothing to show", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
		touch(t, filepath.Join(root, "z.rpm"))
		render := renderByName(map[string]string{"z.rpm": "Z"})

		// when
		output, err := packagemanager.WalkChangelogs(root, render)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Z", output)
	})

	t.Run("should report an aggregate error when every entry fails", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		touch(t, filepath.Join(root, "broken.rpm"))

		// when
		_, err := packagemanager.WalkChangelogs(root, renderByName(nil))

		// then
		require.ErrorIs(t, err, entities.ErrNoChangelogsInDirectory)
	})

	t.Run("should report an aggregate error for an empty directory", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()

		// when
		_, err := packagemanager.WalkChangelogs(root, renderByName(nil))

		// then
		require.ErrorIs(t, err, entities.ErrNoChangelogsInDirectory)
	})

	t.Run("should fail when the root cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(t.TempDir(), "missing")

		// when
		_, err := packagemanager.WalkChangelogs(root, renderByName(nil))

		// then
		require.Error(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.NotErrorIs(t, err, entities.ErrNoChangelogsInDirectory)
	})
}
