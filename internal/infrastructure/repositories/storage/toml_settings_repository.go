package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

const (
	programName      = "package-assistant"
	settingsFileName = "settings.toml"
	dataFileName     = "data.toml"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Getenv looks up an environment variable, returning "" when it is unset.
type Getenv func(key string) string

// baseDir is an XDG variable with its fallback under HOME.
type baseDir struct {
	variable string
	fallback []string
}

var (
	configBase = baseDir{variable: "XDG_CONFIG_HOME", fallback: []string{".config"}}         //nolint:gochecknoglobals // fixed XDG layout
	dataBase   = baseDir{variable: "XDG_DATA_HOME", fallback: []string{".local", "share"}} //nolint:gochecknoglobals // fixed XDG layout
)

// SettingsRepository stores settings.toml and data.toml under the XDG
// config and data directories.
type SettingsRepository struct {
	getenv Getenv
}

// NewSettingsRepository resolves directories from the process environment.
func NewSettingsRepository() *SettingsRepository {
	return NewSettingsRepositoryWithEnv(os.Getenv)
}

// NewSettingsRepositoryWithEnv resolves directories through getenv instead
// of the process environment.
func NewSettingsRepositoryWithEnv(getenv Getenv) *SettingsRepository {
	return &SettingsRepository{getenv: getenv}
}

func (it *SettingsRepository) ConfigFilePath() (string, error) {
	return it.filePath(configBase, settingsFileName)
}

func (it *SettingsRepository) DataFilePath() (string, error) {
	return it.filePath(dataBase, dataFileName)
}

func (it *SettingsRepository) LoadSettings() (*entities.Settings, error) {
	path, err := it.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	settings := &entities.Settings{}
	if err = readTOML(path, settings); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (it *SettingsRepository) SaveSettings(settings *entities.Settings) error {
	path, err := it.ConfigFilePath()
	if err != nil {
		return err
	}
	return writeTOML(path, settings)
}

func (it *SettingsRepository) LoadData() (*entities.Data, error) {
	path, err := it.DataFilePath()
	if err != nil {
		return nil, err
	}

	data := &entities.Data{}
	if err = readTOML(path, data); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return data, nil
}

func (it *SettingsRepository) SaveData(data *entities.Data) error {
	path, err := it.DataFilePath()
	if err != nil {
		return err
	}
	return writeTOML(path, data)
}

func (it *SettingsRepository) InitSettings(customPath string, defaults *entities.Settings) (string, error) {
	path, err := it.ConfigFilePath()
	if err != nil {
		return "", err
	}

	if customPath != "" {
		custom := &entities.Settings{}
		if err = readTOML(customPath, custom); err != nil {
			return "", fmt.Errorf("failed to read custom settings: %w", err)
		}
		logger.Debugf("[storage] Replacing %s with %s", path, customPath)
		return path, writeTOML(path, custom)
	}

	exists, err := fileExists(path)
	if err != nil {
		return "", err
	}
	if exists {
		logger.Debugf("[storage] Keeping existing settings at %s", path)
		return path, nil
	}
	return path, writeTOML(path, defaults)
}

func (it *SettingsRepository) InitData() (string, error) {
	path, err := it.DataFilePath()
	if err != nil {
		return "", err
	}

	exists, err := fileExists(path)
	if err != nil {
		return "", err
	}
	if exists {
		return path, fmt.Errorf("%w: %s", entities.ErrFileAlreadyExists, path)
	}
	return path, writeTOML(path, &entities.Data{})
}

func (it *SettingsRepository) filePath(base baseDir, fileName string) (string, error) {
	if root := strings.TrimSpace(it.getenv(base.variable)); root != "" {
		return filepath.Join(root, programName, fileName), nil
	}
	if home := strings.TrimSpace(it.getenv("HOME")); home != "" {
		parts := append([]string{home}, base.fallback...)
		return filepath.Join(append(parts, programName, fileName)...), nil
	}
	return "", entities.ErrDirectoryUndefined
}

func readTOML(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = toml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("invalid TOML in %s: %w", path, err)
	}
	return nil
}

func writeTOML(path string, source any) error {
	raw, err := toml.Marshal(source)
	if err != nil {
		return err
	}
	return writeAtomic(path, raw)
}

// writeAtomic writes data through a temporary file renamed over path.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}

	file, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := file.Name()

	_, writeErr := file.Write(data)
	closeErr := file.Close()
	if err = errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err = os.Chmod(tmp, filePerm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
