package config

// Store backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const defaultTrials = 10

// Config is the top-level YAML structure.
type Config struct {
	// Input is a .graphml file or a directory of them.
	Input string `yaml:"input"`

	// Output is the directory reports and the run log land in.
	Output string `yaml:"output"`

	// Workers bounds pipeline concurrency; 0 picks the CPU count.
	Workers int `yaml:"workers"`

	// Watch keeps the process alive, analyzing new files dropped into
	// the input directory.
	Watch bool `yaml:"watch"`

	Attack  AttackConf  `yaml:"attack"`
	Store   StoreConf   `yaml:"store"`
	Metrics MetricsConf `yaml:"metrics"`
	Log     LogConf     `yaml:"log"`
}

// AttackConf tunes the robustness-curve sampling.
type AttackConf struct {
	// Trials is the number of random removal sequences averaged per
	// fraction.
	Trials int `yaml:"trials"`

	// Seed fixes the random curves; 0 selects the built-in default.
	Seed int64 `yaml:"seed"`
}

// StoreConf selects the run-record backend.
type StoreConf struct {
	Backend string `yaml:"backend"` // sqlite, postgres, or memory
	Path    string `yaml:"path"`    // sqlite database file
	DSN     string `yaml:"dsn"`     // postgres connection string
}

// MetricsConf configures the Prometheus endpoint.
type MetricsConf struct {
	// Listen is the scrape address; empty disables the endpoint.
	Listen string `yaml:"listen"`
}

// LogConf configures the slog handler.
type LogConf struct {
	Level  string `yaml:"level"`  // debug, info, warn, or error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:   "webs",
		Output:  "reports",
		Workers: 0,
		Attack:  AttackConf{Trials: defaultTrials},
		Store:   StoreConf{Backend: BackendSQLite, Path: "foodweb.db"},
		Log:     LogConf{Level: "info", Format: FormatText},
	}
}
