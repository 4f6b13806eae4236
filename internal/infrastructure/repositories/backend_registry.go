package repositories

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	domainRepos "github.com/rios0rios0/package-assistant/internal/domain/repositories"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/packagemanager"
)

// BackendFactory is a constructor function that creates a backend on top of the shared base.
type BackendFactory func(base *packagemanager.Base) domainRepos.PackageManagerRepository

// BackendRegistry manages all registered package manager implementations.
type BackendRegistry struct {
	backends  map[entities.BackendType]BackendFactory
	commands  domainRepos.CommandRepository
	archives  domainRepos.ArchiveRepository
	installed domainRepos.InstalledPackageRepository
}

var _ domainRepos.PackageManagerFactory = (*BackendRegistry)(nil)

// NewBackendRegistry creates an empty registry whose backends share the given collaborators.
func NewBackendRegistry(
	commands domainRepos.CommandRepository,
	archives domainRepos.ArchiveRepository,
	installed domainRepos.InstalledPackageRepository,
) *BackendRegistry {
	return &BackendRegistry{
		backends:  make(map[entities.BackendType]BackendFactory),
		commands:  commands,
		archives:  archives,
		installed: installed,
	}
}

// Register adds a backend factory under the given type (e.g. zypper).
func (r *BackendRegistry) Register(backend entities.BackendType, factory BackendFactory) {
	r.backends[backend] = factory
}

// Get returns the backend selected by config. Unset and unregistered types
// fail with entities.ErrUnsupportedPackageManager.
func (r *BackendRegistry) Get(config entities.PackageConfig) (domainRepos.PackageManagerRepository, error) {
	factory, ok := r.backends[config.PackageManager]
	if !ok {
		return nil, fmt.Errorf(
			"%w: got %q, available: %s",
			entities.ErrUnsupportedPackageManager, config.PackageManager.String(), strings.Join(r.Names(), ", "),
		)
	}
	return factory(packagemanager.NewBase(config, r.commands, r.archives, r.installed)), nil
}

// Names returns the sorted list of registered backend names.
func (r *BackendRegistry) Names() []string {
	names := lo.Map(lo.Keys(r.backends), func(backend entities.BackendType, _ int) string {
		return backend.String()
	})
	slices.Sort(names)
	return names
}
