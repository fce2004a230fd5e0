// Package config provides configuration management for pantry.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): env vars > config.yaml > defaults
//
// # Design Principles
//
// - All mutations go through Option functions
// - Invalid options are rejected with gn.Warn() - config keeps its previous value
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
// - Database credentials have no defaults; Validate() reports them missing
//
// # Environment Variables
//
// Use PANTRY_ prefix with underscores for nesting:
//
//	PANTRY_DATABASE_DRIVER=postgres
//	PANTRY_DATABASE_HOST=localhost
//	PANTRY_DATABASE_PORT=5432
//	PANTRY_DATABASE_USER=pantry
//	PANTRY_DATABASE_PASSWORD=secret
//	PANTRY_DATABASE_DATABASE=pantry
//	PANTRY_LOG_LEVEL=info
package config

// Config represents the complete pantry configuration.
type Config struct {
	// Database contains connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains database connection parameters.
type DatabaseConfig struct {
	// Driver selects the database engine: "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file, used when Driver is "sqlite".
	Path string `mapstructure:"path" yaml:"path"`

	// ConnectTimeout is the number of seconds to wait for a connection.
	ConnectTimeout int `mapstructure:"connect_timeout" yaml:"connect_timeout"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with default values.
// Host, user, password and database name are left empty on purpose:
// they have to come from config.yaml or the environment.
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:         "postgres",
			Port:           5432,
			SSLMode:        "disable",
			ConnectTimeout: 5,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// the interactive screen stays clean when logs go to a file
			Destination: "file",
		},
	}

	return res
}
