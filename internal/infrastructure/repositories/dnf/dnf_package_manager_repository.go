package dnf

import (
	"context"
	"errors"
	"regexp"

	"github.com/samber/lo"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/packagemanager"
)

const (
	managerName        = "dnf"
	listUpdatesCommand = "dnf check-update"

	// dnf check-update exits with 100 when updates are available.
	updatesAvailableExitCode = 100
)

var updateLinePattern = regexp.MustCompile(`(?m)^(\S+)[ \t]+(\S+)[ \t]+updates$`)

// PackageManagerRepository implements repositories.PackageManagerRepository for dnf.
type PackageManagerRepository struct {
	*packagemanager.Base
}

// NewPackageManagerRepository creates the dnf backend on top of the shared base.
func NewPackageManagerRepository(base *packagemanager.Base) repositories.PackageManagerRepository {
	return &PackageManagerRepository{Base: base}
}

func (it *PackageManagerRepository) Name() string { return managerName }

// CheckUpdate lists the available updates. Exit status 100 carries the
// listing; any other failure is logged and reported as no updates.
func (it *PackageManagerRepository) CheckUpdate(ctx context.Context) ([]entities.PackageUpdateItem, error) {
	output, err := it.Commands().Run(ctx, entities.ShellCommand{
		Line: listUpdatesCommand,
		Kind: entities.CommandKindDnf,
	})
	if err != nil {
		var cmdErr *entities.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.ExitCode != updatesAvailableExitCode {
			logger.Warnf("[dnf] Could not check for updates: %v", err)
			return []entities.PackageUpdateItem{}, nil
		}
		output = cmdErr.Stdout
	}

	items := ParseUpdates(output)
	logger.Debugf("[dnf] Found %d update(s)", len(items))
	return items, nil
}

// ParseUpdates extracts name and new version from every `name version updates`
// line. dnf never reports the installed version here.
func ParseUpdates(output string) []entities.PackageUpdateItem {
	matches := updateLinePattern.FindAllStringSubmatch(output, -1)
	return lo.Map(matches, func(match []string, _ int) entities.PackageUpdateItem {
		return entities.PackageUpdateItem{Name: match[1], NewVersion: match[2]}
	})
}
