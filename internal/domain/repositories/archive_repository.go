package repositories

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// ArchiveRepository reads metadata from package files on disk.
type ArchiveRepository interface {
	Read(path string) (entities.PackageArchive, error)
}

// InstalledPackageRepository queries the package database of the running system.
type InstalledPackageRepository interface {
	// LatestChangelogTime returns the timestamp of the newest changelog entry
	// of the installed package with the given name.
	LatestChangelogTime(ctx context.Context, name string) (uint64, error)
}
