package config

const (
	defaultStateDir           = "~/.local/share/movieshows"
	defaultLogDir             = "~/.local/share/movieshows/logs"
	defaultSourceBase         = "."
	defaultRequestTimeout     = 15
	defaultUserAgent          = "MovieShows/dev"
	defaultStateBackend       = BackendSQLite
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogMaxSizeMB       = 20
	defaultLogMaxBackups      = 5
	defaultLogRetentionDays   = 60
	defaultConfigRelativePath = "~/.config/movieshows/config.toml"
	projectConfigName         = "movieshows.toml"
)

// State backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// DefaultCandidates lists the conventional payload locations probed in order
// when no injected payload or override produced items.
func DefaultCandidates() []string {
	return []string{
		"./content.json",
		"./catalog.json",
		"./data.json",
		"./data/content.json",
		"./data/catalog.json",
		"./data/all.json",
		"./data/movies.json",
		"./data/tv.json",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Source: Source{
			Base:           defaultSourceBase,
			Candidates:     DefaultCandidates(),
			RequestTimeout: defaultRequestTimeout,
			UserAgent:      defaultUserAgent,
		},
		State: State{
			Backend: defaultStateBackend,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
