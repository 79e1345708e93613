// Package config provides configuration management for the seqjoin CLI.
//
// Values are layered from defaults, a seqjoin.yaml file, SEQJOIN_ environment
// variables and explicitly set command-line flags, in increasing precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	Separator    string `koanf:"separator"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	LogLevel     string `koanf:"log_level"`
	HistoryFile  string `koanf:"history_file"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory. Not loaded from any source.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultSeparator   = " "
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel    = "warn"
	DefaultHistoryFile = ".seqjoin_history"
)

// Config file names searched in each directory, in order.
var configFileNames = []string{"seqjoin.yaml", "seqjoin.yml"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Separator:    DefaultSeparator,
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		HistoryFile:  DefaultHistoryFile,
	}
}
