package repositories

import "github.com/rios0rios0/package-assistant/internal/domain/entities"

// SettingsRepository persists the configuration and state documents.
type SettingsRepository interface {
	ConfigFilePath() (string, error)
	DataFilePath() (string, error)

	LoadSettings() (*entities.Settings, error)
	SaveSettings(settings *entities.Settings) error

	LoadData() (*entities.Data, error)
	SaveData(data *entities.Data) error

	// InitSettings writes the settings file. A non-empty customPath is parsed
	// and copied over any existing file; otherwise defaults are written unless
	// a file is already present. It returns the settings file path.
	InitSettings(customPath string, defaults *entities.Settings) (string, error)

	// InitData writes a zeroed data file, failing with
	// entities.ErrFileAlreadyExists when one is present.
	InitData() (string, error)
}

// DistributionRepository identifies the running Linux distribution.
type DistributionRepository interface {
	// DetectBackend returns the native package manager of the distribution,
	// or entities.BackendUnset when it is not recognized.
	DetectBackend() (entities.BackendType, error)
}
