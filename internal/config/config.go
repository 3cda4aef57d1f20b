package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Orders OrdersConfig `mapstructure:"orders"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type OrdersConfig struct {
	// AtomicIDs switches order id assignment from the read-max-then-insert
	// sequence to the store's atomic counter.
	AtomicIDs bool `mapstructure:"atomic_ids"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is fine; defaults cover local development.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.orderdesk/")
	v.AddConfigPath("/etc/orderdesk/")

	// Enable environment variable override with ORDERDESK_ prefix
	v.SetEnvPrefix("ORDERDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("store.uri", "mongodb://localhost:27017")
	v.SetDefault("store.database", "ordersdb")
	v.SetDefault("orders.atomic_ids", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
