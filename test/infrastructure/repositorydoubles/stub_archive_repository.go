//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// StubArchiveRepository implements repositories.ArchiveRepository keyed by file base name,
// so tests can lay out files in a temporary directory and describe their metadata here.
type StubArchiveRepository struct {
	Archives  map[string]entities.PackageArchive // base name -> metadata
	ReadPaths []string
}

var _ repositories.ArchiveRepository = (*StubArchiveRepository)(nil)

func (s *StubArchiveRepository) Read(path string) (entities.PackageArchive, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if archive, ok := s.Archives[filepath.Base(path)]; ok {
		return archive, nil
	}
	return entities.PackageArchive{}, fmt.Errorf("%w: %s", entities.ErrInvalidArchive, path)
}

// StubInstalledPackageRepository implements repositories.InstalledPackageRepository.
type StubInstalledPackageRepository struct {
	Timestamps map[string]uint64
	Err        error
	Queried    []string
}

var _ repositories.InstalledPackageRepository = (*StubInstalledPackageRepository)(nil)

func (s *StubInstalledPackageRepository) LatestChangelogTime(_ context.Context, name string) (uint64, error) {
	s.Queried = append(s.Queried, name)
	if s.Err != nil {
		return 0, s.Err
	}
	if timestamp, ok := s.Timestamps[name]; ok {
		return timestamp, nil
	}
	return 0, entities.ErrInvalidRPMResponse
}
