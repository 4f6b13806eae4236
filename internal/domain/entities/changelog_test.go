//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

func TestChangelogQueryMatches(t *testing.T) {
	t.Parallel()

	t.Run("should match every package without a name", func(t *testing.T) {
		t.Parallel()

		// given
		query := entities.ChangelogQuery{}

		// when
		matched := query.Matches("kernel-default")

		// then
		assert.True(t, matched)
	})

	t.Run("should match by case-sensitive prefix", func(t *testing.T) {
		t.Parallel()

		// given
		query := entities.ChangelogQuery{Name: "kernel"}

		// when / then
		assert.True(t, query.Matches("kernel-default"))
		assert.False(t, query.Matches("Kernel-default"))
		assert.False(t, query.Matches("linux-kernel"))
	})
}

func TestPackageArchiveFilterChangelogs(t *testing.T) {
	t.Parallel()

	t.Run("should keep entries strictly newer than the threshold in order", func(t *testing.T) {
		t.Parallel()

		// given
		archive := entities.PackageArchive{
			Name: "a",
			Changelog: []entities.ChangelogEntry{
				{Timestamp: 300, Description: "third"},
				{Timestamp: 100, Description: "at threshold"},
				{Timestamp: 50, Description: "old"},
				{Timestamp: 150, Description: "second"},
			},
		}

		// when
		changelogs := archive.FilterChangelogs(100)

		// then
		assert.Equal(t, []string{"third", "second"}, changelogs)
	})

	t.Run("should drop entries with non-positive timestamps", func(t *testing.T) {
		t.Parallel()

		// given
		archive := entities.PackageArchive{
			Changelog: []entities.ChangelogEntry{
				{Timestamp: 0, Description: "zero"},
				{Timestamp: -5, Description: "negative"},
			},
		}

		// when
		changelogs := archive.FilterChangelogs(0)

		// then
		assert.Empty(t, changelogs)
	})
}

func TestPackageChangelogResultRender(t *testing.T) {
	t.Parallel()

	t.Run("should render a banner followed by one entry per line", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.PackageChangelogResult{Name: "a", Changelogs: []string{"- one", "- two"}}

		// when
		rendered, err := result.Render()

		// then
		require.NoError(t, err)
		assert.Equal(t, "==== a ====\n- one\n- two", rendered)
	})

	t.Run("should fail when there is nothing to render", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.PackageChangelogResult{Name: "b"}

		// when
		_, err := result.Render()

		// then
		require.ErrorIs(t, err, entities.ErrNoChangelogsForPackage)
	})
}

func TestJoinPackageChangelogs(t *testing.T) {
	t.Parallel()

	t.Run("should separate blocks with a blank line", func(t *testing.T) {
		t.Parallel()

		// given
		blocks := []string{"==== a ====\n1", "==== b ====\n2"}

		// when
		joined := entities.JoinPackageChangelogs(blocks)

		// then
		assert.Equal(t, "==== a ====\n1\n\n==== b ====\n2", joined)
	})
}
