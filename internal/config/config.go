// Package config loads service configuration from config files, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"PrecisionWorks/internal/capability"
	"PrecisionWorks/internal/catalog"
)

type Config struct {
	Service string `mapstructure:"service"`
	Port    string `mapstructure:"port"`

	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Gateway GatewayConfig `mapstructure:"gateway"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
}

type CatalogConfig struct {
	// DatabaseURL, when set, loads the catalog from Postgres at boot.
	DatabaseURL string `mapstructure:"database_url"`
	// SeedFile, when set and DatabaseURL is not, loads the catalog from a JSON file.
	SeedFile    string  `mapstructure:"seed_file"`
	FailureRate float64 `mapstructure:"failure_rate"`

	Latency           LatencyConfig           `mapstructure:"latency"`
	CapabilityLatency CapabilityLatencyConfig `mapstructure:"capability_latency"`
}

type LatencyConfig struct {
	GetAll        time.Duration `mapstructure:"get_all"`
	GetByID       time.Duration `mapstructure:"get_by_id"`
	GetByCategory time.Duration `mapstructure:"get_by_category"`
	Search        time.Duration `mapstructure:"search"`
}

type CapabilityLatencyConfig struct {
	GetAll        time.Duration `mapstructure:"get_all"`
	GetByID       time.Duration `mapstructure:"get_by_id"`
	GetFeatured   time.Duration `mapstructure:"get_featured"`
	GetByCategory time.Duration `mapstructure:"get_by_category"`
}

type GatewayConfig struct {
	CatalogURL string        `mapstructure:"catalog_url"`
	RateLimit  int           `mapstructure:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window"`
}

func (c LatencyConfig) Latency() catalog.Latency {
	return catalog.Latency{
		GetAll:        c.GetAll,
		GetByID:       c.GetByID,
		GetByCategory: c.GetByCategory,
		Search:        c.Search,
	}
}

func (c CapabilityLatencyConfig) Latency() capability.Latency {
	return capability.Latency{
		GetAll:        c.GetAll,
		GetByID:       c.GetByID,
		GetFeatured:   c.GetFeatured,
		GetByCategory: c.GetByCategory,
	}
}

func (c CatalogConfig) StubOptions() catalog.StubOptions {
	return catalog.StubOptions{
		Latency:     c.Latency.Latency(),
		FailureRate: c.FailureRate,
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if c.Catalog.FailureRate < 0 || c.Catalog.FailureRate > 1 {
		errs = append(errs, fmt.Errorf("catalog.failure_rate must be within [0,1], got %v", c.Catalog.FailureRate))
	}

	lat := map[string]time.Duration{
		"catalog.latency.get_all":                    c.Catalog.Latency.GetAll,
		"catalog.latency.get_by_id":                  c.Catalog.Latency.GetByID,
		"catalog.latency.get_by_category":            c.Catalog.Latency.GetByCategory,
		"catalog.latency.search":                     c.Catalog.Latency.Search,
		"catalog.capability_latency.get_all":         c.Catalog.CapabilityLatency.GetAll,
		"catalog.capability_latency.get_by_id":       c.Catalog.CapabilityLatency.GetByID,
		"catalog.capability_latency.get_featured":    c.Catalog.CapabilityLatency.GetFeatured,
		"catalog.capability_latency.get_by_category": c.Catalog.CapabilityLatency.GetByCategory,
	}
	for k, d := range lat {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", k))
		}
	}

	if c.Metrics.Enabled && c.Metrics.Token == "" {
		errs = append(errs, errors.New("metrics.token is required when metrics are enabled"))
	}
	if c.Gateway.RateLimit < 0 {
		errs = append(errs, errors.New("gateway.rate_limit must not be negative"))
	}

	return errors.Join(errs...)
}
