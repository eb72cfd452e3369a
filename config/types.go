package config

// DataConfig names the three tabular sources. Each source is a local path or an http(s) URL.
type DataConfig struct {
	Routes    string `yaml:"routes" validate:"omitempty"`
	Drivers   string `yaml:"drivers" validate:"omitempty"`
	Trips     string `yaml:"trips" validate:"omitempty"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// StatsConfig is the placeholder policy for routes without trip history
type StatsConfig struct {
	FallbackTripCount   int     `yaml:"fallbackTripCount" validate:"gte=0"`
	FallbackAverageCost float64 `yaml:"fallbackAverageCost" validate:"gte=0"`
	FallbackTotalCost   float64 `yaml:"fallbackTotalCost" validate:"gte=0"`
}

// ListingConfig contains list view settings
type ListingConfig struct {
	PageSize          int `yaml:"pageSize" validate:"gte=0"`
	PopularRouteTrips int `yaml:"popularRouteTrips" validate:"gte=0"`
	TopDriverRoutes   int `yaml:"topDriverRoutes" validate:"gte=0"`
	SuggestionLimit   int `yaml:"suggestionLimit" validate:"gte=0"`
}

// MatcherConfig selects how exact route matches are classified
type MatcherConfig struct {
	Mode string `yaml:"mode" validate:"omitempty,oneof=substring endpoints"` // substring|endpoints
}

// CacheConfig contains memoization and snapshot cache settings
type CacheConfig struct {
	Size         int    `yaml:"size" validate:"gte=0"`
	SnapshotPath string `yaml:"snapshotPath" validate:"omitempty"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Stats   StatsConfig   `yaml:"stats"`
	Listing ListingConfig `yaml:"listing"`
	Matcher MatcherConfig `yaml:"matcher"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}
