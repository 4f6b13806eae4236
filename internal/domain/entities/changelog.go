package entities

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	bannerFormat       = "==== %s ===="
	packageSeparator   = "\n\n"
	changelogSeparator = "\n"
)

// ChangelogQuery filters packages by a case-sensitive name prefix. An empty
// Name matches every package.
type ChangelogQuery struct {
	Name string
}

// Matches reports whether the declared package name satisfies the query.
func (q ChangelogQuery) Matches(name string) bool {
	return strings.HasPrefix(name, q.Name)
}

// ChangelogEntry is one (timestamp, text) pair from a package header.
type ChangelogEntry struct {
	Timestamp   int64 // unix seconds
	Description string
}

// NewerThan reports whether the entry is strictly newer than threshold.
func (e ChangelogEntry) NewerThan(threshold uint64) bool {
	return e.Timestamp > 0 && uint64(e.Timestamp) > threshold
}

// PackageArchive is the metadata read from a package file.
type PackageArchive struct {
	Name      string
	Changelog []ChangelogEntry
}

// FilterChangelogs returns the descriptions of entries newer than threshold, in order.
func (a PackageArchive) FilterChangelogs(threshold uint64) []string {
	return lo.FilterMap(a.Changelog, func(entry ChangelogEntry, _ int) (string, bool) {
		return entry.Description, entry.NewerThan(threshold)
	})
}

// PackageChangelogResult is a package name with its already filtered changelog texts.
type PackageChangelogResult struct {
	Name       string
	Changelogs []string
}

// Render formats the result as a banner followed by one entry per line.
// It returns ErrNoChangelogsForPackage when there is nothing to render.
func (r PackageChangelogResult) Render() (string, error) {
	if len(r.Changelogs) == 0 {
		return "", ErrNoChangelogsForPackage
	}
	lines := append([]string{fmt.Sprintf(bannerFormat, r.Name)}, r.Changelogs...)
	return strings.Join(lines, changelogSeparator), nil
}

// JoinPackageChangelogs joins rendered package blocks with a blank line between them.
func JoinPackageChangelogs(blocks []string) string {
	return strings.Join(blocks, packageSeparator)
}
