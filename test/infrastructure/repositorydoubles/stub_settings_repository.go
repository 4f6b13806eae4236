//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
)

// InMemorySettingsRepository implements repositories.SettingsRepository without touching disk.
type InMemorySettingsRepository struct {
	Settings *entities.Settings
	Data     *entities.Data

	LoadSettingsErr error
	LoadDataErr     error
	SaveDataErr     error
	InitSettingsErr error
	InitDataErr     error

	// spy: arguments received
	InitCustomPaths []string
	InitDefaults    []*entities.Settings
	SavedData       []entities.Data
}

var _ repositories.SettingsRepository = (*InMemorySettingsRepository)(nil)

func (r *InMemorySettingsRepository) ConfigFilePath() (string, error) {
	return "/config/package-assistant/settings.toml", nil
}

func (r *InMemorySettingsRepository) DataFilePath() (string, error) {
	return "/data/package-assistant/data.toml", nil
}

func (r *InMemorySettingsRepository) LoadSettings() (*entities.Settings, error) {
	if r.LoadSettingsErr != nil {
		return nil, r.LoadSettingsErr
	}
	return r.Settings, nil
}

func (r *InMemorySettingsRepository) SaveSettings(settings *entities.Settings) error {
	r.Settings = settings
	return nil
}

func (r *InMemorySettingsRepository) LoadData() (*entities.Data, error) {
	if r.LoadDataErr != nil {
		return nil, r.LoadDataErr
	}
	if r.Data == nil {
		return &entities.Data{}, nil
	}
	return r.Data, nil
}

func (r *InMemorySettingsRepository) SaveData(data *entities.Data) error {
	if r.SaveDataErr != nil {
		return r.SaveDataErr
	}
	r.SavedData = append(r.SavedData, *data)
	r.Data = data
	return nil
}

func (r *InMemorySettingsRepository) InitSettings(customPath string, defaults *entities.Settings) (string, error) {
	r.InitCustomPaths = append(r.InitCustomPaths, customPath)
	r.InitDefaults = append(r.InitDefaults, defaults)
	if r.InitSettingsErr != nil {
		return "", r.InitSettingsErr
	}
	return r.ConfigFilePath()
}

func (r *InMemorySettingsRepository) InitData() (string, error) {
	if r.InitDataErr != nil {
		return "", r.InitDataErr
	}
	return r.DataFilePath()
}

// StubDistributionRepository implements repositories.DistributionRepository.
type StubDistributionRepository struct {
	Backend entities.BackendType
	Err     error
}

var _ repositories.DistributionRepository = (*StubDistributionRepository)(nil)

func (s *StubDistributionRepository) DetectBackend() (entities.BackendType, error) {
	return s.Backend, s.Err
}
