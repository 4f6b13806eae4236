package commands

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// Init is the interface for the init command.
type Init interface {
	Execute(opts InitOptions) (string, error)
}

// InitOptions holds the options of the init command.
type InitOptions struct {
	CustomConfigPath string // If set, copied over the settings file
}

// InitCommand writes the settings and data files.
type InitCommand struct {
	settings     repositories.SettingsRepository
	distribution repositories.DistributionRepository
}

// NewInitCommand creates a new InitCommand.
func NewInitCommand(
	settings repositories.SettingsRepository,
	distribution repositories.DistributionRepository,
) *InitCommand {
	return &InitCommand{settings: settings, distribution: distribution}
}

// Execute writes the settings file (custom copy or defaults for the detected
// distribution) and a fresh data file. An existing data file is kept. It
// returns the settings file path.
func (it *InitCommand) Execute(opts InitOptions) (string, error) {
	defaults := entities.NewSettings(entities.BackendUnset)
	if opts.CustomConfigPath == "" {
		defaults = entities.NewSettings(it.detectBackend())
	}

	configPath, err := it.settings.InitSettings(opts.CustomConfigPath, defaults)
	if err != nil {
		return "", fmt.Errorf("error with configuration: %w", err)
	}

	dataPath, err := it.settings.InitData()
	switch {
	case errors.Is(err, entities.ErrFileAlreadyExists):
		logger.Debugf("Keeping existing data file %s", dataPath)
	case err != nil:
		return "", fmt.Errorf("error initializing data file: %w", err)
	}

	return configPath, nil
}

func (it *InitCommand) detectBackend() entities.BackendType {
	backend, err := it.distribution.DetectBackend()
	if err != nil {
		logger.Warnf("Could not detect the distribution: %v", err)
		return entities.BackendUnset
	}
	if backend == entities.BackendUnset {
		logger.Warn("Unknown distribution, edit the package commands in the settings file")
	} else {
		logger.Infof("Using %s defaults", backend)
	}
	return backend
}
