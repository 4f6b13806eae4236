package rpm

import (
	"fmt"

	gorpm "github.com/cavaliercoder/go-rpm"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

const (
	// the main header follows the signature header
	mainHeader = 1

	tagChangelogTime = 1080
	tagChangelogText = 1082
)

// ArchiveRepository reads name and changelog metadata from .rpm files.
type ArchiveRepository struct{}

// NewArchiveRepository creates an ArchiveRepository.
func NewArchiveRepository() *ArchiveRepository {
	return &ArchiveRepository{}
}

// Read opens the package file at path.
func (it *ArchiveRepository) Read(path string) (entities.PackageArchive, error) {
	pkg, err := gorpm.OpenPackageFile(path)
	if err != nil {
		return entities.PackageArchive{}, fmt.Errorf("%w: %s: %w", entities.ErrInvalidArchive, path, err)
	}
	if len(pkg.Headers) <= mainHeader {
		return entities.PackageArchive{}, fmt.Errorf("%w: %s: missing main header", entities.ErrInvalidArchive, path)
	}

	indexes := pkg.Headers[mainHeader].Indexes
	return entities.PackageArchive{
		Name:      pkg.Name(),
		Changelog: zipChangelog(indexes.IntsByTag(tagChangelogTime), indexes.StringsByTag(tagChangelogText)),
	}, nil
}

// zipChangelog pairs timestamps with texts, dropping the tail of the longer slice.
func zipChangelog(times []int64, texts []string) []entities.ChangelogEntry {
	count := min(len(times), len(texts))
	entries := make([]entities.ChangelogEntry, 0, count)
	for i := range count {
		entries = append(entries, entities.ChangelogEntry{Timestamp: times[i], Description: texts[i]})
	}
	return entries
}
