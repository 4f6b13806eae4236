//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// SpyPackageManagerRepository implements repositories.PackageManagerRepository as a configurable spy.
type SpyPackageManagerRepository struct {
	// --- identity ---
	ManagerName   string
	PackageConfig entities.PackageConfig

	// --- CheckUpdate ---
	Updates        []entities.PackageUpdateItem
	CheckUpdateErr error
	CheckCalls     int

	// --- PackageChangelogs ---
	ChangelogResult entities.PackageChangelogResult
	ChangelogErr    error

	// --- CachedChangelogs ---
	CachedChangelogsResult string
	CachedChangelogsErr    error
	CachedQueries          []entities.ChangelogQuery
	CachedThresholds       []uint64

	// --- DownloadUpdate ---
	DownloadErr   error
	DownloadCalls int

	// --- DoUpdate ---
	DoUpdateErr   error
	DoUpdateCalls []bool // interactive flag per call
}

var _ repositories.PackageManagerRepository = (*SpyPackageManagerRepository)(nil)

func (s *SpyPackageManagerRepository) Name() string { return s.ManagerName }

func (s *SpyPackageManagerRepository) Config() entities.PackageConfig { return s.PackageConfig }

func (s *SpyPackageManagerRepository) CheckUpdate(_ context.Context) ([]entities.PackageUpdateItem, error) {
	s.CheckCalls++
	return s.Updates, s.CheckUpdateErr
}

func (s *SpyPackageManagerRepository) PackageChangelogs(
	_ context.Context, _ entities.ChangelogQuery, _ string, _ uint64,
) (entities.PackageChangelogResult, error) {
	return s.ChangelogResult, s.ChangelogErr
}

func (s *SpyPackageManagerRepository) CachedChangelogs(
	_ context.Context, query entities.ChangelogQuery, threshold uint64,
) (string, error) {
	s.CachedQueries = append(s.CachedQueries, query)
	s.CachedThresholds = append(s.CachedThresholds, threshold)
	return s.CachedChangelogsResult, s.CachedChangelogsErr
}

func (s *SpyPackageManagerRepository) DownloadUpdate(_ context.Context) error {
	s.DownloadCalls++
	return s.DownloadErr
}

func (s *SpyPackageManagerRepository) DoUpdate(_ context.Context, interactive bool) error {
	s.DoUpdateCalls = append(s.DoUpdateCalls, interactive)
	return s.DoUpdateErr
}

// StubPackageManagerFactory implements repositories.PackageManagerFactory
// by handing out a fixed backend.
type StubPackageManagerFactory struct {
	Backend repositories.PackageManagerRepository
	Err     error
	Configs []entities.PackageConfig
}

var _ repositories.PackageManagerFactory = (*StubPackageManagerFactory)(nil)

func (s *StubPackageManagerFactory) Get(config entities.PackageConfig) (repositories.PackageManagerRepository, error) {
	s.Configs = append(s.Configs, config)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Backend, nil
}
