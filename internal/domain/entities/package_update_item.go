package entities

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// PackageUpdateItem is one available update. Empty versions are unknown.
type PackageUpdateItem struct {
	Name       string `json:"name"                  yaml:"name"`
	OldVersion string `json:"old_version,omitempty" yaml:"old_version,omitempty"`
	NewVersion string `json:"new_version,omitempty" yaml:"new_version,omitempty"`
}

func (i PackageUpdateItem) String() string {
	if i.NewVersion == "" {
		return i.Name
	}
	if i.OldVersion == "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.NewVersion)
	}
	return fmt.Sprintf("%s (%s) -> (%s)", i.Name, i.NewVersion, i.OldVersion)
}

// DiffKind classifies the distance between two editions.
type DiffKind string

const (
	DiffUnknown DiffKind = "unknown"
	DiffMajor   DiffKind = "major"
	DiffMinor   DiffKind = "minor"
	DiffPatch   DiffKind = "patch"
)

// Diff classifies the update when both editions reduce to semantic versions.
// Epochs ("2:") and release suffixes ("-150500.1") are ignored.
func (i PackageUpdateItem) Diff() DiffKind {
	if i.OldVersion == "" || i.NewVersion == "" {
		return DiffUnknown
	}

	current := normalizeEdition(i.OldVersion)
	available := normalizeEdition(i.NewVersion)
	if !semver.IsValid(current) || !semver.IsValid(available) {
		return DiffUnknown
	}

	if semver.Major(current) != semver.Major(available) {
		return DiffMajor
	}
	if semver.MajorMinor(current) != semver.MajorMinor(available) {
		return DiffMinor
	}
	return DiffPatch
}

// normalizeEdition turns an RPM edition into a "v"-prefixed version for semver.
func normalizeEdition(edition string) string {
	version := strings.TrimSpace(edition)
	if _, after, found := strings.Cut(version, ":"); found {
		version = after
	}
	if before, _, found := strings.Cut(version, "-"); found {
		version = before
	}
	return "v" + version
}
