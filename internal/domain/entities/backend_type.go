package entities

import "strings"

// BackendType selects the native package manager integration.
type BackendType string

const (
	BackendUnset  BackendType = ""
	BackendZypper BackendType = "zypper"
	BackendDnf    BackendType = "dnf"
	BackendApt    BackendType = "apt"
	BackendPacman BackendType = "pacman"
)

// ParseBackendType maps a settings value to a BackendType. Unknown values are unset.
func ParseBackendType(value string) BackendType {
	switch BackendType(strings.ToLower(strings.TrimSpace(value))) {
	case BackendZypper:
		return BackendZypper
	case BackendDnf:
		return BackendDnf
	case BackendApt:
		return BackendApt
	case BackendPacman:
		return BackendPacman
	default:
		return BackendUnset
	}
}

func (b BackendType) String() string {
	if b == BackendUnset {
		return "unset"
	}
	return string(b)
}

// UnmarshalText lets settings files spell the backend in any case.
func (b *BackendType) UnmarshalText(text []byte) error {
	*b = ParseBackendType(string(text))
	return nil
}
