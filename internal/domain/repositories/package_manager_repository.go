package repositories

import (
	"context"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// PackageManagerRepository abstracts a native package manager (zypper, dnf).
// Backends implement CheckUpdate and reading one package file; the cache walk,
// download, and update operations are shared through the packagemanager base.
type PackageManagerRepository interface {
	// Name returns the backend identifier (e.g. "zypper", "dnf").
	Name() string

	// Config returns the package settings the backend was built with.
	Config() entities.PackageConfig

	// CheckUpdate asks the package manager for available updates. An empty
	// slice means the system is up to date.
	CheckUpdate(ctx context.Context) ([]entities.PackageUpdateItem, error)

	// PackageChangelogs opens the package file at path and returns its
	// changelog entries newer than threshold. A name that does not satisfy
	// query yields a *entities.PackageNameMismatchError.
	PackageChangelogs(
		ctx context.Context,
		query entities.ChangelogQuery,
		path string,
		threshold uint64,
	) (entities.PackageChangelogResult, error)

	// CachedChangelogs walks the configured cache directory and renders every
	// package that has unseen changelog entries.
	CachedChangelogs(ctx context.Context, query entities.ChangelogQuery, threshold uint64) (string, error)

	// DownloadUpdate runs the configured download command with elevated privileges.
	DownloadUpdate(ctx context.Context) error

	// DoUpdate applies updates, prompting through the terminal when interactive.
	DoUpdate(ctx context.Context, interactive bool) error
}

// PackageManagerFactory builds the backend selected by the package settings.
type PackageManagerFactory interface {
	Get(config entities.PackageConfig) (PackageManagerRepository, error)
}
