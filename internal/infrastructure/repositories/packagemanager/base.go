package packagemanager

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// Base implements the operations every backend shares. Backends embed it and
// add Name and CheckUpdate.
type Base struct {
	config    entities.PackageConfig
	commands  repositories.CommandRepository
	archives  repositories.ArchiveRepository
	installed repositories.InstalledPackageRepository
}

// NewBase creates a Base. installed may be nil, in which case
// compare_installed has no effect.
func NewBase(
	config entities.PackageConfig,
	commands repositories.CommandRepository,
	archives repositories.ArchiveRepository,
	installed repositories.InstalledPackageRepository,
) *Base {
	return &Base{
		config:    config,
		commands:  commands,
		archives:  archives,
		installed: installed,
	}
}

// Config returns the package settings.
func (it *Base) Config() entities.PackageConfig {
	return it.config
}

// Commands returns the executor backends run their own queries through.
func (it *Base) Commands() repositories.CommandRepository {
	return it.commands
}

// PackageChangelogs reads the package file at path and keeps the changelog
// entries newer than threshold.
func (it *Base) PackageChangelogs(
	ctx context.Context,
	query entities.ChangelogQuery,
	path string,
	threshold uint64,
) (entities.PackageChangelogResult, error) {
	archive, err := it.archives.Read(path)
	if err != nil {
		return entities.PackageChangelogResult{}, err
	}

	if !query.Matches(archive.Name) {
		return entities.PackageChangelogResult{}, &entities.PackageNameMismatchError{
			Name:  archive.Name,
			Query: query.Name,
		}
	}

	return entities.PackageChangelogResult{
		Name:       archive.Name,
		Changelogs: archive.FilterChangelogs(it.effectiveThreshold(ctx, archive.Name, threshold)),
	}, nil
}

// CachedChangelogs renders the unseen changelog entries of every package in
// the configured cache directory.
func (it *Base) CachedChangelogs(
	ctx context.Context,
	query entities.ChangelogQuery,
	threshold uint64,
) (string, error) {
	if !it.config.HasCachedPackagePath() {
		return "", entities.ErrUnknownCachedPackagePath
	}

	logger.Debugf("[changelog] Reading %s (query %q, newer than %d)", it.config.CachedPackagePath, query.Name, threshold)
	return WalkChangelogs(it.config.CachedPackagePath, func(path string) (string, error) {
		result, err := it.PackageChangelogs(ctx, query, path, threshold)
		if err != nil {
			return "", err
		}
		return result.Render()
	})
}

// DownloadUpdate runs the download command with elevated privileges.
func (it *Base) DownloadUpdate(ctx context.Context) error {
	_, err := it.commands.Run(ctx, entities.ShellCommand{
		Line:    it.config.DownloadCommand,
		Elevate: true,
		Kind:    entities.CommandKindDownload,
	})
	return err
}

// DoUpdate applies the updates. Interactive runs attach the update command to
// the terminal; otherwise the noconfirm command runs with captured output.
func (it *Base) DoUpdate(ctx context.Context, interactive bool) error {
	if interactive {
		return it.commands.RunInteractive(ctx, entities.ShellCommand{
			Line:    it.config.UpdateCommand,
			Elevate: true,
			Kind:    entities.CommandKindUpdate,
		})
	}

	_, err := it.commands.Run(ctx, entities.ShellCommand{
		Line:    it.config.NoconfirmUpdateCommand,
		Elevate: true,
		Kind:    entities.CommandKindUpdate,
	})
	return err
}

func (it *Base) effectiveThreshold(ctx context.Context, name string, threshold uint64) uint64 {
	if !it.config.CompareInstalled || it.installed == nil {
		return threshold
	}

	installed, err := it.installed.LatestChangelogTime(ctx, name)
	if err != nil {
		logger.Debugf("[changelog] No installed changelog time for %s: %v", name, err)
		return threshold
	}
	return max(threshold, installed)
}
