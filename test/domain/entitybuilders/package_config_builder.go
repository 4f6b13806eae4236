//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// PackageConfigBuilder helps create package settings with a fluent interface.
// Defaults describe a zypper system with a cache directory.
type PackageConfigBuilder struct {
	*testkit.BaseBuilder
	packageManager         entities.BackendType
	downloadCommand        string
	updateCommand          string
	noconfirmUpdateCommand string
	cachedPackagePath      string
	compareInstalled       bool
}

// NewPackageConfigBuilder creates a new builder with zypper defaults.
func NewPackageConfigBuilder() *PackageConfigBuilder {
	b := &PackageConfigBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.setDefaults()
	return b
}

func (b *PackageConfigBuilder) setDefaults() {
	b.packageManager = entities.BackendZypper
	b.downloadCommand = "zypper --non-interactive update --download-only"
	b.updateCommand = "zypper update"
	b.noconfirmUpdateCommand = "zypper --non-interactive update"
	b.cachedPackagePath = "/var/cache/zypp/packages"
	b.compareInstalled = false
}

// WithPackageManager sets the backend.
func (b *PackageConfigBuilder) WithPackageManager(backend entities.BackendType) *PackageConfigBuilder {
	b.packageManager = backend
	return b
}

// WithDownloadCommand sets the download command line.
func (b *PackageConfigBuilder) WithDownloadCommand(command string) *PackageConfigBuilder {
	b.downloadCommand = command
	return b
}

// WithUpdateCommand sets the interactive update command line.
func (b *PackageConfigBuilder) WithUpdateCommand(command string) *PackageConfigBuilder {
	b.updateCommand = command
	return b
}

// WithNoconfirmUpdateCommand sets the non-interactive update command line.
func (b *PackageConfigBuilder) WithNoconfirmUpdateCommand(command string) *PackageConfigBuilder {
	b.noconfirmUpdateCommand = command
	return b
}

// WithCachedPackagePath sets the cache directory. An empty path means unknown.
func (b *PackageConfigBuilder) WithCachedPackagePath(path string) *PackageConfigBuilder {
	b.cachedPackagePath = path
	return b
}

// WithCompareInstalled toggles comparison with the installed changelog.
func (b *PackageConfigBuilder) WithCompareInstalled(enabled bool) *PackageConfigBuilder {
	b.compareInstalled = enabled
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *PackageConfigBuilder) Build() interface{} {
	return b.BuildPackageConfig()
}

// BuildPackageConfig creates the settings with a concrete return type.
func (b *PackageConfigBuilder) BuildPackageConfig() entities.PackageConfig {
	return entities.PackageConfig{
		PackageManager:         b.packageManager,
		DownloadCommand:        b.downloadCommand,
		UpdateCommand:          b.updateCommand,
		NoconfirmUpdateCommand: b.noconfirmUpdateCommand,
		CachedPackagePath:      b.cachedPackagePath,
		CompareInstalled:       b.compareInstalled,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.setDefaults()
	return b
}

// Clone creates a deep copy of the PackageConfigBuilder.
func (b *PackageConfigBuilder) Clone() testkit.Builder {
	return &PackageConfigBuilder{
		BaseBuilder:            b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		packageManager:         b.packageManager,
		downloadCommand:        b.downloadCommand,
		updateCommand:          b.updateCommand,
		noconfirmUpdateCommand: b.noconfirmUpdateCommand,
		cachedPackagePath:      b.cachedPackagePath,
		compareInstalled:       b.compareInstalled,
	}
}
