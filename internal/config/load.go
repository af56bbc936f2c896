package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix shared by all configuration environment variables.
const EnvPrefix = "TASKTRACK"

// Option customizes how Load resolves configuration.
type Option func(v *viper.Viper) error

// WithFlags binds command-line flags to configuration keys. Bindings map a
// config key (e.g. "log.level") to a flag name; a flag only overrides the
// other sources when it was set explicitly.
func WithFlags(fs *pflag.FlagSet, bindings map[string]string) Option {
	return func(v *viper.Viper) error {
		for key, name := range bindings {
			flag := fs.Lookup(name)
			if flag == nil {
				return fmt.Errorf("flag %q not defined for config key %s", name, key)
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
		return nil
	}
}

// Load configuration from environment variables and optionally a config file.
// An empty configFile means only defaults and the environment are consulted.
// Precedence, highest first: explicit flags, environment, file, defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configFile string, opts ...Option) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and the driver-specific requirements.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch {
	case cfg.Store.Driver == DriverBolt && cfg.Store.Path == "":
		return fmt.Errorf("config validation failed: %w", errors.New("store.path is required for the bolt driver"))
	case cfg.Store.IsSQL() && cfg.Store.URL == "":
		return fmt.Errorf(
			"config validation failed: %w",
			fmt.Errorf("store.url is required for the %s driver", cfg.Store.Driver),
		)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.driver", DriverBolt)
	v.SetDefault("store.path", "tasktrack.db")
	v.SetDefault("store.url", "")
	v.SetDefault("store.auto_migrate", true)
	v.SetDefault("store.max_open_conns", 10)
	v.SetDefault("tasks.require_text", false)
	v.SetDefault("tasks.max_id_attempts", 5)
}
