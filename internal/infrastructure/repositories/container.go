package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	domainRepos "github.com/rios0rios0/package-assistant/internal/domain/repositories"
	dnfRepo "github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/dnf"
	osRepo "github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/osrelease"
	rpmRepo "github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/rpm"
	shellRepo "github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/shell"
	storageRepo "github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/storage"
	zypperRepo "github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/zypper"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		func() domainRepos.CommandRepository {
			return shellRepo.NewCommandRepository(shellRepo.DefaultElevationHelper)
		},
		func() domainRepos.ArchiveRepository {
			return rpmRepo.NewArchiveRepository()
		},
		func(commands domainRepos.CommandRepository) domainRepos.InstalledPackageRepository {
			return rpmRepo.NewInstalledPackageRepository(commands)
		},
		func() domainRepos.SettingsRepository {
			return storageRepo.NewSettingsRepository()
		},
		func() domainRepos.DistributionRepository {
			return osRepo.NewDistributionRepository(osRepo.DefaultPath)
		},
		// Register backend registry with all implemented package managers
		func(
			commands domainRepos.CommandRepository,
			archives domainRepos.ArchiveRepository,
			installed domainRepos.InstalledPackageRepository,
		) *BackendRegistry {
			reg := NewBackendRegistry(commands, archives, installed)
			reg.Register(entities.BackendZypper, zypperRepo.NewPackageManagerRepository)
			reg.Register(entities.BackendDnf, dnfRepo.NewPackageManagerRepository)
			return reg
		},
		func(impl *BackendRegistry) domainRepos.PackageManagerFactory {
			return impl
		},
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}
