package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type SessionConfig struct {
	Name        string `mapstructure:"name"`
	Secret      string `mapstructure:"secret"`
	MaxAgeHours int    `mapstructure:"max_age_hours"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Log      LogConfig      `mapstructure:"log"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in the current working
// directory. Environment variables prefixed MIREIS_ override file values.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		v.SetEnvPrefix("MIREIS")
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
