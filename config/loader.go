package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Matcher modes
const (
	MatchSubstring = "substring"
	MatchEndpoints = "endpoints"
)

// Config is the global application configuration
var Config = Default()

// Default returns the configuration used when no file overrides a value
func Default() AppConfig {
	return AppConfig{
		Data: DataConfig{
			Routes:    "data/routes.csv",
			Drivers:   "data/drivers.csv",
			Trips:     "data/trips.csv",
			TimeoutMS: 10000,
		},
		Stats: StatsConfig{
			FallbackTripCount:   3,
			FallbackAverageCost: 118333,
			FallbackTotalCost:   355000,
		},
		Listing: ListingConfig{
			PageSize:          12,
			PopularRouteTrips: 20,
			TopDriverRoutes:   15,
			SuggestionLimit:   200,
		},
		Matcher: MatcherConfig{Mode: MatchSubstring},
		Cache:   CacheConfig{Size: 256},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./routedesk/config.yml"}
	var err error
	for _, p := range paths {
		var cfg AppConfig
		cfg, err = Load(p)
		if err == nil {
			Config = cfg
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return err
}

// Load reads, defaults and validates a single config file
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a validated configuration
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyDefaults restores settings that have no meaningful zero value when a
// file sets them empty. Numeric policy values such as the stats fallbacks keep
// an explicit 0.
func applyDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Data.Routes == "" {
		cfg.Data.Routes = def.Data.Routes
	}
	if cfg.Data.Drivers == "" {
		cfg.Data.Drivers = def.Data.Drivers
	}
	if cfg.Data.Trips == "" {
		cfg.Data.Trips = def.Data.Trips
	}
	if cfg.Listing.PageSize == 0 {
		cfg.Listing.PageSize = def.Listing.PageSize
	}
	if cfg.Matcher.Mode == "" {
		cfg.Matcher.Mode = def.Matcher.Mode
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = def.Cache.Size
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}
