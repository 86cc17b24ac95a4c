package config

import (
	"golang-stock-predictor/pkg/config"
)

// Upstream holds the external model service client configuration.
type Upstream struct {
	BaseURL             string `mapstructure:"base_url"`
	Timeout             string `mapstructure:"timeout"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	DownCooldown        string `mapstructure:"down_cooldown"`
}

// Cache holds prediction cache configuration.
type Cache struct {
	Enabled bool   `mapstructure:"enabled"`
	TTL     string `mapstructure:"ttl"`
}

// Retention holds prediction history retention configuration.
type Retention struct {
	CronExpression string `mapstructure:"cron_expression"`
	MaxAge         string `mapstructure:"max_age"`
}

// Config holds the full configuration for the prediction service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Upstream  Upstream        `mapstructure:"upstream"`
	Cache     Cache           `mapstructure:"cache"`
	Retention Retention       `mapstructure:"retention"`
}

// Load loads the prediction service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
