// Package session wires a loaded snapshot to the engine and memoizes results.
//
// Cached entries are keyed by the snapshot version plus the operation inputs,
// so a session built over a new snapshot never serves stale values.
package session

import (
	"bytes"
	"maps"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/routedesk/config"
	"github.com/theoremus-urban-solutions/routedesk/dataset"
	"github.com/theoremus-urban-solutions/routedesk/engine"
	"github.com/theoremus-urban-solutions/routedesk/model"
)

// Session answers engine queries over one snapshot. It is meant for a single
// user and is not safe for concurrent use.
type Session struct {
	snap   *dataset.Snapshot
	cfg    config.AppConfig
	policy engine.StatsPolicy
	logger *zap.Logger
	memo   *lru.Cache[string, any]
}

// New creates a session over snap
func New(snap *dataset.Snapshot, cfg config.AppConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if snap == nil {
		snap = dataset.Empty()
	}
	size := cfg.Cache.Size
	if size <= 0 {
		size = config.Default().Cache.Size
	}
	memo, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}
	return &Session{
		snap: snap,
		cfg:  cfg,
		policy: engine.StatsPolicy{
			FallbackTripCount:   cfg.Stats.FallbackTripCount,
			FallbackAverageCost: cfg.Stats.FallbackAverageCost,
			FallbackTotalCost:   cfg.Stats.FallbackTotalCost,
		},
		logger: logger,
		memo:   memo,
	}, nil
}

// Snapshot returns the underlying snapshot
func (s *Session) Snapshot() *dataset.Snapshot { return s.snap }

// Config returns the session configuration
func (s *Session) Config() config.AppConfig { return s.cfg }

func (s *Session) memoKey(args ...string) string {
	var b bytes.Buffer
	b.WriteString(s.snap.Version)
	for _, a := range args {
		b.WriteByte('|')
		b.WriteString(a)
	}
	return b.String()
}

func memoize[T any](s *Session, key string, compute func() T) T {
	if v, ok := s.memo.Get(key); ok {
		if t, ok := v.(T); ok {
			s.logger.Debug("memo hit", zap.String("key", key))
			return t
		}
	}
	t := compute()
	s.memo.Add(key, t)
	return t
}

// Cities returns the sorted city index
func (s *Session) Cities() []string {
	return slices.Clone(memoize(s, s.memoKey("cities"), func() []string {
		return engine.Cities(s.snap.Routes)
	}))
}

// SuggestCities filters the city index for autocomplete
func (s *Session) SuggestCities(query string) []string {
	return engine.SuggestCities(s.Cities(), query, s.cfg.Listing.SuggestionLimit)
}

// Search classifies routes for an origin/destination pair using the configured matcher mode
func (s *Session) Search(origin, destination string) engine.MatchResult {
	mode := s.cfg.Matcher.Mode
	res := memoize(s, s.memoKey("search", mode, origin, destination), func() engine.MatchResult {
		if mode == config.MatchEndpoints {
			return engine.MatchRoutesByEndpoints(s.snap.Routes, origin, destination)
		}
		return engine.MatchRoutes(s.snap.Routes, origin, destination)
	})
	return engine.MatchResult{Exact: slices.Clone(res.Exact), Partial: slices.Clone(res.Partial)}
}

// RouteStats returns the trip statistics of a route
func (s *Session) RouteStats(routeName string) engine.RouteStats {
	if st, ok := s.allRouteStats()[routeName]; ok {
		return st
	}
	return memoize(s, s.memoKey("route-stats", routeName), func() engine.RouteStats {
		return engine.CalculateRouteStats(s.snap.Trips, routeName, s.policy)
	})
}

func (s *Session) allRouteStats() map[string]engine.RouteStats {
	return memoize(s, s.memoKey("route-stats"), func() map[string]engine.RouteStats {
		return engine.CalculateAllRouteStats(s.snap.Routes, s.snap.Trips, s.policy)
	})
}

// DriverFinancials returns a driver's trip figures
func (s *Session) DriverFinancials(driverName string) engine.DriverFinancials {
	f := memoize(s, s.memoKey("driver", driverName), func() engine.DriverFinancials {
		return engine.ResolveDriverFinancials(s.snap.Trips, driverName)
	})
	f.PerRoute = maps.Clone(f.PerRoute)
	return f
}

// DriverEarnings returns the total earnings of every driver
func (s *Session) DriverEarnings() map[string]float64 {
	return maps.Clone(s.driverEarnings())
}

func (s *Session) driverEarnings() map[string]float64 {
	return memoize(s, s.memoKey("earnings"), func() map[string]float64 {
		return engine.DriverEarnings(s.snap.Trips)
	})
}

// Routes filters and sorts the route list
func (s *Session) Routes(query, order string) []model.Route {
	return slices.Clone(memoize(s, s.memoKey("routes", query, order), func() []model.Route {
		return engine.RoutePipeline(s.allRouteStats()).Apply(s.snap.Routes, query, order)
	}))
}

// Drivers filters and sorts the driver list
func (s *Session) Drivers(query, order string) []model.Driver {
	return slices.Clone(memoize(s, s.memoKey("drivers", query, order), func() []model.Driver {
		return engine.DriverPipeline(s.driverEarnings()).Apply(s.snap.Drivers, query, order)
	}))
}

// DriversForRoute resolves the drivers listed on a route
func (s *Session) DriversForRoute(r model.Route) []model.Driver {
	return s.snap.DriversForRoute(r)
}

// Summary counts the loaded records
func (s *Session) Summary() engine.Summary {
	return memoize(s, s.memoKey("summary"), func() engine.Summary {
		return engine.Summarize(s.snap.Routes, s.snap.Drivers, s.snap.Trips)
	})
}

// IsPopular reports whether a route's trip count passes the configured threshold
func (s *Session) IsPopular(routeName string) bool {
	return engine.IsPopular(s.RouteStats(routeName), s.cfg.Listing.PopularRouteTrips)
}

// IsTopDriver reports whether a driver's declared route count passes the configured threshold
func (s *Session) IsTopDriver(d model.Driver) bool {
	return engine.IsTopDriver(d, s.cfg.Listing.TopDriverRoutes)
}

// NewPager creates a pager sized by the configured page size
func (s *Session) NewPager() *engine.Pager {
	return engine.NewPager(s.cfg.Listing.PageSize)
}
