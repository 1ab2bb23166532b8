package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/dukaforge/gamerental/pkg/types"
)

// Config defaults. The password has no default on purpose: it comes from
// the config file or GAMERENTAL_PASSWORD, never from code.
const (
	defaultBackend  = types.BackendPostgres
	defaultHost     = "localhost"
	defaultLogLevel = "warn"
	defaultDataDir  = "."
)

// loadConfig merges, in increasing precedence: defaults, the config
// file (gamerental.yaml in the working directory or ~/.gamerental),
// GAMERENTAL_* environment variables, and finally the three positional
// arguments (dbname, port, user) when given.
func loadConfig(configFile string, args []string) (types.Config, error) {
	v := viper.New()
	v.SetDefault("backend", defaultBackend)
	v.SetDefault("host", defaultHost)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("data_dir", defaultDataDir)

	// Registering empty defaults makes these keys visible to Unmarshal
	// so GAMERENTAL_* environment values are picked up.
	v.SetDefault("database", "")
	v.SetDefault("port", 0)
	v.SetDefault("user", "")
	v.SetDefault("password", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("gamerental")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.gamerental")
	}

	v.SetEnvPrefix("GAMERENTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from
		// environment and positional arguments.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if len(args) == 3 {
		cfg.Database = args[0]
		port, err := strconv.Atoi(args[1])
		if err != nil {
			return types.Config{}, fmt.Errorf("port argument %q is not a number", args[1])
		}
		cfg.Port = port
		cfg.User = args[2]
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
