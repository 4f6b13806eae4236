package entities

// CommandKind tags the failure a shell command reports, so callers can tell a
// failed download from a failed zypper query.
type CommandKind string

const (
	CommandKindDownload CommandKind = "download"
	CommandKindUpdate   CommandKind = "update"
	CommandKindZypper   CommandKind = "zypper"
	CommandKindDnf      CommandKind = "dnf"
	CommandKindRPM      CommandKind = "rpm"
)

// ShellCommand is a single command line handed to `sh -c`.
type ShellCommand struct {
	Line    string
	Elevate bool // prefix the privilege-elevation helper
	Kind    CommandKind
}
