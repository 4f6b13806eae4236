package osrelease

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// DefaultPath is where systemd-based distributions describe themselves.
const DefaultPath = "/etc/os-release"

// PlatformProbe reports the platform and platform family of the host.
type PlatformProbe func() (platform, family string, err error)

// DistributionRepository implements repositories.DistributionRepository over os-release.
type DistributionRepository struct {
	path  string
	probe PlatformProbe
}

// NewDistributionRepository reads the os-release file at path, or DefaultPath when empty.
func NewDistributionRepository(path string) *DistributionRepository {
	return NewDistributionRepositoryWithProbe(path, hostPlatform)
}

// NewDistributionRepositoryWithProbe uses probe when the os-release file cannot be read.
func NewDistributionRepositoryWithProbe(path string, probe PlatformProbe) *DistributionRepository {
	if path == "" {
		path = DefaultPath
	}
	return &DistributionRepository{path: path, probe: probe}
}

// DetectBackend maps ID, then each ID_LIKE entry, to the first known backend.
// Hosts without os-release fall back to the legacy release files known to gopsutil.
func (it *DistributionRepository) DetectBackend() (entities.BackendType, error) {
	file, err := ini.Load(it.path)
	if err != nil {
		if it.probe == nil {
			return entities.BackendUnset, fmt.Errorf("failed to read %s: %w", it.path, err)
		}
		logger.Debugf("[osrelease] Could not read %s, probing the platform: %s", it.path, err)
		return it.detectFromPlatform(err)
	}

	section := file.Section(ini.DefaultSection)
	ids := append(
		[]string{section.Key("ID").String()},
		strings.Fields(section.Key("ID_LIKE").String())...,
	)

	for _, id := range ids {
		if backend := backendFor(strings.ToLower(strings.TrimSpace(id))); backend != entities.BackendUnset {
			logger.Debugf("[osrelease] Detected %s from %q", backend, id)
			return backend, nil
		}
	}
	return entities.BackendUnset, nil
}

func (it *DistributionRepository) detectFromPlatform(readErr error) (entities.BackendType, error) {
	platform, family, err := it.probe()
	if err != nil {
		return entities.BackendUnset, fmt.Errorf("failed to read %s: %w", it.path, errors.Join(readErr, err))
	}

	for _, id := range []string{platform, family} {
		if backend := backendFor(strings.ToLower(strings.TrimSpace(id))); backend != entities.BackendUnset {
			logger.Debugf("[osrelease] Detected %s from platform %q", backend, id)
			return backend, nil
		}
	}
	return entities.BackendUnset, nil
}

func hostPlatform() (string, string, error) {
	platform, family, _, err := host.PlatformInformation()
	return platform, family, err
}

func backendFor(id string) entities.BackendType {
	switch {
	case strings.HasPrefix(id, "opensuse"), id == "suse", id == "sles":
		return entities.BackendZypper
	case id == "fedora", id == "rhel", id == "centos", id == "rocky", id == "almalinux":
		return entities.BackendDnf
	case id == "debian", id == "ubuntu":
		return entities.BackendApt
	case id == "arch":
		return entities.BackendPacman
	default:
		return entities.BackendUnset
	}
}
