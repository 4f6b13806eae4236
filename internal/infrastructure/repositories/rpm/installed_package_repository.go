package rpm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// InstalledPackageRepository asks the rpm database about installed packages.
type InstalledPackageRepository struct {
	commands repositories.CommandRepository
}

// NewInstalledPackageRepository creates an InstalledPackageRepository running rpm through commands.
func NewInstalledPackageRepository(commands repositories.CommandRepository) *InstalledPackageRepository {
	return &InstalledPackageRepository{commands: commands}
}

// LatestChangelogTime returns the CHANGELOGTIME of the installed package.
// When several versions are installed the first one reported wins.
func (it *InstalledPackageRepository) LatestChangelogTime(ctx context.Context, name string) (uint64, error) {
	stdout, err := it.commands.Run(ctx, entities.ShellCommand{
		Line: fmt.Sprintf(`rpm -q %s --qf '%%{CHANGELOGTIME}\n'`, quote(name)),
		Kind: entities.CommandKindRPM,
	})
	if err != nil {
		return 0, err
	}

	firstLine, _, _ := strings.Cut(stdout, "\n")
	firstLine = strings.TrimSpace(firstLine)
	if firstLine == "" {
		return 0, entities.ErrInvalidRPMResponse
	}

	timestamp, err := strconv.ParseUint(firstLine, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", entities.ErrInvalidRPMResponse, err)
	}
	return timestamp, nil
}

func quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
