package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand is returned when an operation needs a command that is not configured.
	ErrEmptyCommand = errors.New("update and download commands must be provided in settings")

	// ErrNoChangelogsForPackage is returned when a package has no entry newer than the threshold.
	ErrNoChangelogsForPackage = errors.New("package has no changelogs to display")

	// ErrNoChangelogsInDirectory is returned when a walk over the cache finds nothing to show.
	ErrNoChangelogsInDirectory = errors.New("could not find any packages containing changelogs")

	// ErrUnsupportedPackageManager is returned by the backend factory for unset or unimplemented backends.
	ErrUnsupportedPackageManager = errors.New("'package_manager' in settings is either empty or not supported")

	// ErrUnknownCachedPackagePath is returned when changelogs are requested without a cache directory.
	ErrUnknownCachedPackagePath = errors.New("'cached_package_path' must be provided in settings")

	ErrInvalidOutputEncoding = errors.New("command output is not valid UTF-8")
	ErrInvalidArchive        = errors.New("file is not a readable package archive")
	ErrMalformedXML          = errors.New("malformed XML in package manager output")
	ErrInvalidRPMResponse    = errors.New("rpm query returned an unexpected response")

	// ErrDirectoryUndefined is returned when neither the XDG variable nor HOME is set.
	ErrDirectoryUndefined = errors.New("could not determine a directory to store data")
	ErrFileAlreadyExists  = errors.New("file already exists")
)

// PackageNameMismatchError reports a package skipped because its name does not start with the query.
type PackageNameMismatchError struct {
	Name  string
	Query string
}

func (e *PackageNameMismatchError) Error() string {
	return fmt.Sprintf("package '%s' does not match the query '%s'", e.Name, e.Query)
}

// CommandError is a shell command that exited with a nonzero status.
type CommandError struct {
	Kind     CommandKind
	Stdout   string
	Stderr   string
	ExitCode int
}

func (e *CommandError) Error() string {
	detail := e.Stderr
	if detail == "" {
		detail = fmt.Sprintf("exit status %d", e.ExitCode)
	}

	switch e.Kind {
	case CommandKindDownload:
		return "failed to download packages: " + detail
	case CommandKindUpdate:
		return "failed to run update: " + detail
	case CommandKindZypper, CommandKindDnf, CommandKindRPM:
		return fmt.Sprintf("%s command failed: %s", e.Kind, detail)
	default:
		return "command failed: " + detail
	}
}
