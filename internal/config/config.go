// Package config loads runtime configuration from config.yaml, .env, and
// PACKSEARCH_-prefixed environment variables, in that order of increasing
// precedence. It also carries the curated fallback city and product lists
// used when no catalog source supplies them.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	Env string `mapstructure:"env"` // "development" or "production"

	Search struct {
		Threshold     float64       `mapstructure:"threshold"`
		DefaultLimit  int           `mapstructure:"default_limit"`
		DebounceDelay time.Duration `mapstructure:"debounce_delay"`
	} `mapstructure:"search"`

	Cache struct {
		ListingTTL    time.Duration `mapstructure:"listing_ttl"`
		ConfigTTL     time.Duration `mapstructure:"config_ttl"`
		SweepInterval time.Duration `mapstructure:"sweep_interval"`
		MaxPerKind    int           `mapstructure:"max_per_kind"`
		FuzzRadius    float64       `mapstructure:"fuzz_radius"`
	} `mapstructure:"cache"`

	Catalog struct {
		Source              string `mapstructure:"source"` // "bolt" or "json"
		DBPath              string `mapstructure:"db_path"`
		DataDir             string `mapstructure:"data_dir"`
		Watch               bool   `mapstructure:"watch"`
		UseFallbackCities   bool   `mapstructure:"use_fallback_cities"`
		UseFallbackProducts bool   `mapstructure:"use_fallback_products"`
	} `mapstructure:"catalog"`

	Scrub struct {
		Enabled    bool     `mapstructure:"enabled"`
		ExtraTerms []string `mapstructure:"extra_terms"`
	} `mapstructure:"scrub"`
}

// Load reads configuration. A missing config.yaml or .env is fine; the
// defaults describe a fully working local setup.
func Load() (Config, error) {
	// .env is optional and only feeds the environment.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config.yaml")
		}
	}

	v.SetEnvPrefix("PACKSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("search.threshold", 0.6)
	v.SetDefault("search.default_limit", 4)
	v.SetDefault("search.debounce_delay", 300*time.Millisecond)

	v.SetDefault("cache.listing_ttl", 5*time.Minute)
	v.SetDefault("cache.config_ttl", 30*time.Minute)
	v.SetDefault("cache.sweep_interval", 5*time.Minute)
	v.SetDefault("cache.max_per_kind", 200)
	v.SetDefault("cache.fuzz_radius", 0.0072)

	v.SetDefault("catalog.source", "json")
	v.SetDefault("catalog.db_path", "packsearch.db")
	v.SetDefault("catalog.data_dir", "data")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("catalog.use_fallback_cities", true)
	v.SetDefault("catalog.use_fallback_products", true)

	v.SetDefault("scrub.enabled", true)
}
