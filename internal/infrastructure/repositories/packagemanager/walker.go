package packagemanager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// PackageRenderer turns one package file into its rendered changelog block.
type PackageRenderer func(path string) (string, error)

// WalkChangelogs recursively renders every file under root and joins the
// blocks that rendered successfully with a blank line. Entries that fail,
// including subdirectories with nothing to show, are skipped. When nothing
// survives, ErrNoChangelogsInDirectory is returned.
func WalkChangelogs(root string, render PackageRenderer) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %q: %w", root, err)
	}

	blocks := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		path := filepath.Join(root, entry.Name())

		var block string
		var entryErr error
		if entry.IsDir() {
			block, entryErr = WalkChangelogs(path, render)
		} else {
			block, entryErr = render(path)
		}

		if entryErr != nil {
			logger.Debugf("[changelog] Skipping %s: %v", path, entryErr)
			return "", false
		}
		return block, true
	})

	if len(blocks) == 0 {
		return "", entities.ErrNoChangelogsInDirectory
	}
	return entities.JoinPackageChangelogs(blocks), nil
}
