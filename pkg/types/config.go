package types

import "errors"

// Supported storage backend names.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDatabaseEmpty  = errors.New("database name must not be empty")
	ErrPortInvalid    = errors.New("port must be between 1 and 65535")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendPostgres: true,
	BackendSQLite:   true,
}

// Config holds backend selection and connection parameters. The three
// positional startup arguments (database, port, user) override whatever
// the config file or environment supplied; the password only ever comes
// from config or environment.
type Config struct {
	Backend  string `mapstructure:"backend" yaml:"backend"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Database string `mapstructure:"database" yaml:"database"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	DataDir  string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendPostgres {
		if c.Database == "" {
			return ErrDatabaseEmpty
		}
		if c.Port < 1 || c.Port > 65535 {
			return ErrPortInvalid
		}
	}
	return nil
}
