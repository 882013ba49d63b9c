package config

const (
	defaultDataDir         = "~/.local/share/tradehall"
	defaultManifestURL     = "https://piston-meta.mojang.com/mc/game/version_manifest.json"
	defaultRequestTimeout  = 30
	defaultDownloadTimeout = 300
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Loader: Loader{
			ManifestURL:     defaultManifestURL,
			RequestTimeout:  defaultRequestTimeout,
			DownloadTimeout: defaultDownloadTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
