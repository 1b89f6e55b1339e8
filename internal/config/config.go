package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"
)

type (
	Config struct {
		Host       string `mapstructure:"HOST"`
		Port       string `mapstructure:"PORT"`
		DBHost     string `mapstructure:"DB_HOST"`
		DBPort     string `mapstructure:"DB_PORT"`
		DBUser     string `mapstructure:"DB_USER"`
		DBPassword string `mapstructure:"DB_PASSWORD"`
		DBName     string `mapstructure:"DB_NAME"`
		DBSSLMode  string `mapstructure:"DB_SSL_MODE"`
	}
)

// All settings come from HOLOCRON_* environment variables.
func NewConfig() (*Config, error) {
	viper.SetEnvPrefix("HOLOCRON")

	defaults := map[string]string{
		"HOST":        "0.0.0.0",
		"PORT":        "3000",
		"DB_HOST":     "0.0.0.0",
		"DB_PORT":     "5432",
		"DB_USER":     "holocron",
		"DB_PASSWORD": "holocron",
		"DB_NAME":     "holocron",
		"DB_SSL_MODE": sslModeDisable,
	}
	for key, value := range defaults {
		viper.SetDefault(key, value)
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// DBDSN assembles the postgres connection string in keyword form.
func (cfg *Config) DBDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
}

func (cfg *Config) validate() error {
	switch cfg.DBSSLMode {
	case sslModeDisable, sslModeRequire:
		return nil
	}
	return errors.Errorf("DB SSL mode is invalid: %s", cfg.DBSSLMode)
}
