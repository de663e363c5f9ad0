package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/constants"
)

type Config struct {
	Env     string                     `mapstructure:"env"`
	App     sharedConfig.AppConfig     `mapstructure:"app"`
	Logger  sharedConfig.LoggerConfig  `mapstructure:"logger"`
	Storage sharedConfig.StorageConfig `mapstructure:"storage"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or configPath when given) and
// HELPDESK_* environment variables. A missing default config file is not an
// error: every key has a default.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("HELPDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("env", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) IsDevelopment() bool {
	return c.Env == constants.EnvDevelopment || c.Env == "dev"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", constants.EnvDevelopment)

	// App defaults
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("app.avg_first_response_time", "")
	v.SetDefault("app.seed_file", "")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.debug", false)

	// Storage defaults
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.migration", "goose")
	v.SetDefault("storage.file.dir", "./data")
	v.SetDefault("storage.database.path", "./data/helpdesk.db")
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 3306)
	v.SetDefault("storage.database.username", "root")
	v.SetDefault("storage.database.password", "")
	v.SetDefault("storage.database.database", "helpdesk")
	v.SetDefault("storage.database.max_idle_conns", 5)
	v.SetDefault("storage.database.max_open_conns", 10)
	v.SetDefault("storage.database.conn_max_lifetime", 60)
	v.SetDefault("storage.redis.host", "localhost")
	v.SetDefault("storage.redis.port", 6379)
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "helpdesk:")
}
