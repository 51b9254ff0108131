package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Reports ReportsConfig `mapstructure:"reports"`
}

type BackendConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type ReportsConfig struct {
	Dir string `mapstructure:"dir"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Set default values
	if config.Backend.BaseURL == "" {
		config.Backend.BaseURL = "http://localhost:8000"
	}
	if config.Backend.RequestTimeout == 0 {
		config.Backend.RequestTimeout = 30 * time.Second
	}
	if config.Reports.Dir == "" {
		config.Reports.Dir = "reports"
	}

	return &config, nil
}
