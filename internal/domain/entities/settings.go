package entities

const (
	defaultUpdateCheckFrequency = 30
)

// Settings is the persisted configuration document (settings.toml).
type Settings struct {
	Service ServiceConfig `toml:"service"`
	Package PackageConfig `toml:"package"`
}

// ServiceConfig holds the background service preferences. They are stored and
// shown but no command acts on them yet.
type ServiceConfig struct {
	EnableService        bool   `toml:"enable_service"`
	UpdateCheckFrequency uint32 `toml:"update_check_frequency"` // minutes
	DownloadInBackground bool   `toml:"download_in_background"`
	UpdateOnReboot       bool   `toml:"update_on_reboot"`
}

// PackageConfig is everything a backend needs at call time.
type PackageConfig struct {
	PackageManager         BackendType `toml:"package_manager"`
	DownloadCommand        string      `toml:"download_command"`
	UpdateCommand          string      `toml:"update_command"`
	NoconfirmUpdateCommand string      `toml:"noconfirm_update_command"`
	CachedPackagePath      string      `toml:"cached_package_path,omitempty"`

	// CompareInstalled raises the novelty threshold to the newest changelog
	// entry of the installed package, when rpm can report it.
	CompareInstalled bool `toml:"compare_installed"`
}

// HasCachedPackagePath reports whether the cache directory is configured.
func (c PackageConfig) HasCachedPackagePath() bool {
	return c.CachedPackagePath != ""
}

// Data is the persisted state document (data.toml).
type Data struct {
	UpdateTimestamp uint64 `toml:"update_timestamp"`
}

// NewSettings returns the default settings for the given backend. Backends
// without presets get empty commands and must be edited by hand.
func NewSettings(backend BackendType) *Settings {
	settings := &Settings{
		Service: ServiceConfig{
			EnableService:        true,
			UpdateCheckFrequency: defaultUpdateCheckFrequency,
			DownloadInBackground: true,
			UpdateOnReboot:       true,
		},
		Package: PackageConfig{PackageManager: backend},
	}

	switch backend {
	case BackendZypper:
		settings.Package.DownloadCommand = "zypper --non-interactive update --download-only"
		settings.Package.UpdateCommand = "zypper update"
		settings.Package.NoconfirmUpdateCommand = "zypper --non-interactive update"
		settings.Package.CachedPackagePath = "/var/cache/zypp/packages"
	case BackendDnf:
		settings.Package.DownloadCommand = "dnf upgrade --downloadonly --assumeyes"
		settings.Package.UpdateCommand = "dnf upgrade"
		settings.Package.NoconfirmUpdateCommand = "dnf upgrade --assumeyes"
		settings.Package.CachedPackagePath = "/var/cache/dnf"
	case BackendUnset, BackendApt, BackendPacman:
	}

	return settings
}
