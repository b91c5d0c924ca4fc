package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"PrecisionWorks/internal/capability"
	"PrecisionWorks/internal/catalog"
)

// Load reads configuration for service. Precedence, highest first: environment,
// config.<APP_ENV>.yaml, config.yaml, built-in defaults. Nested keys map to env
// names with dots replaced, e.g. catalog.database_url is CATALOG_DATABASE_URL.
func Load(service string, paths ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, service)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	if env := v.GetString("app_env"); env != "" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("merge %s config: %w", env, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

var defaultPorts = map[string]string{
	"catalog": "8082",
	"gateway": "8080",
}

func setDefaults(v *viper.Viper, service string) {
	port, ok := defaultPorts[service]
	if !ok {
		port = "8080"
	}

	v.SetDefault("service", service)
	v.SetDefault("port", port)
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("app_env", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.token", "")

	lat := catalog.DefaultLatency()
	v.SetDefault("catalog.database_url", "")
	v.SetDefault("catalog.seed_file", "")
	v.SetDefault("catalog.failure_rate", catalog.DefaultFailureRate)
	v.SetDefault("catalog.latency.get_all", lat.GetAll)
	v.SetDefault("catalog.latency.get_by_id", lat.GetByID)
	v.SetDefault("catalog.latency.get_by_category", lat.GetByCategory)
	v.SetDefault("catalog.latency.search", lat.Search)

	capLat := capability.DefaultLatency()
	v.SetDefault("catalog.capability_latency.get_all", capLat.GetAll)
	v.SetDefault("catalog.capability_latency.get_by_id", capLat.GetByID)
	v.SetDefault("catalog.capability_latency.get_featured", capLat.GetFeatured)
	v.SetDefault("catalog.capability_latency.get_by_category", capLat.GetByCategory)

	v.SetDefault("gateway.catalog_url", "http://catalog:8082")
	v.SetDefault("gateway.rate_limit", 120)
	v.SetDefault("gateway.rate_window", "1m")
}
