package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. TEXTSEAL_LOGGER_LOG_LEVEL=debug.
const EnvPrefix = "TEXTSEAL"

// AppConfig is the configuration of the textseal CLI.
// Database is nil when no key catalog is configured.
type AppConfig struct {
	Logger   LoggerSettings    `mapstructure:"logger"`
	Database *DatabaseSettings `mapstructure:"database"`
}

// Validate validates all configured sections.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if c.Database != nil {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// InitializeAppConfig loads the configuration from the YAML file at path.
// An empty path yields the defaults, still subject to environment overrides.
func InitializeAppConfig(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", DefaultLogMaxSizeMB)
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age", DefaultLogMaxAgeDays)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// the database section has no defaults, so its keys are only visible to
	// Unmarshal when bound explicitly
	for _, key := range []string{"database.type", "database.dsn", "database.name"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
