//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

func TestCommandErrorMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      *entities.CommandError
		expected string
	}{
		{
			name:     "should describe a failed download",
			err:      &entities.CommandError{Kind: entities.CommandKindDownload, Stderr: "no network", ExitCode: 1},
			expected: "failed to download packages: no network",
		},
		{
			name:     "should describe a failed update by exit status without stderr",
			err:      &entities.CommandError{Kind: entities.CommandKindUpdate, ExitCode: 126},
			expected: "failed to run update: exit status 126",
		},
		{
			name:     "should name the backend command",
			err:      &entities.CommandError{Kind: entities.CommandKindDnf, Stderr: "repo unreachable", ExitCode: 1},
			expected: "dnf command failed: repo unreachable",
		},
		{
			name:     "should fall back to a generic message",
			err:      &entities.CommandError{Stderr: "boom", ExitCode: 2},
			expected: "command failed: boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// given
			err := tc.err

			// when
			message := err.Error()

			// then
			assert.Equal(t, tc.expected, message)
		})
	}
}

func TestPackageNameMismatchErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("should name the package and the query", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.PackageNameMismatchError{Name: "vim", Query: "kernel"}

		// when
		message := err.Error()

		// then
		assert.Equal(t, "package 'vim' does not match the query 'kernel'", message)
	})
}
