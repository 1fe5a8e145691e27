// Package config loads runtime settings for the API server.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyPort   = "port"
	keyDBPath = "database.path"

	defaultPort   = "8080"
	defaultDBPath = "data/sweetshop.db"
)

// Config holds the runtime settings for the server.
type Config struct {
	Port         string
	DatabasePath string
}

// Load resolves configuration with the precedence: environment
// variables (SWEETSHOP_PORT, SWEETSHOP_DATABASE_PATH), an optional
// config.yaml in the working directory, then built-in defaults.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, defaultPort)
	v.SetDefault(keyDBPath, defaultDBPath)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SWEETSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{
		Port:         v.GetString(keyPort),
		DatabasePath: v.GetString(keyDBPath),
	}, nil
}
