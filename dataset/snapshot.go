package dataset

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/routedesk/model"
)

// Snapshot stores the three tables in memory for fast lookups
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Routes   []model.Route
	Drivers  []model.Driver
	Trips    []model.Trip

	// Stamps records the state of the local source files the snapshot was
	// loaded from. Empty unless the snapshot was built for the cache file.
	Stamps []SourceStamp

	routeByName map[string]int // route name -> index in Routes
	routeByID   map[string]int // route ID -> index in Routes (first record wins)
	driverByID  map[string]int // driver ID -> index in Drivers (first record wins)
}

// New builds a snapshot from decoded records. Synthetic IDs are assigned and
// duplicate route names are dropped (first occurrence wins). Rows without a
// route name are kept but cannot be looked up by name.
func New(routes []model.Route, drivers []model.Driver, trips []model.Trip, logger *zap.Logger) *Snapshot {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Snapshot{
		Version:  uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Routes:   make([]model.Route, 0, len(routes)),
		Drivers:  make([]model.Driver, 0, len(drivers)),
		Trips:    append([]model.Trip{}, trips...),
	}
	seen := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if r.Name == "" {
			logger.Warn("route row without a name", zap.String("origin", r.OriginFull), zap.String("destination", r.DestinationFull))
			r.ID = model.RouteID(r.Name)
			s.Routes = append(s.Routes, r)
			continue
		}
		if _, dup := seen[r.Name]; dup {
			logger.Warn("duplicate route name dropped", zap.String("route", r.Name))
			continue
		}
		seen[r.Name] = struct{}{}
		r.ID = model.RouteID(r.Name)
		s.Routes = append(s.Routes, r)
	}
	for _, d := range drivers {
		d.ID = model.DriverID(d.FullName)
		s.Drivers = append(s.Drivers, d)
	}
	s.reindex()
	return s
}

// Empty returns a snapshot with no records
func Empty() *Snapshot { return New(nil, nil, nil, nil) }

func (s *Snapshot) reindex() {
	s.routeByName = make(map[string]int, len(s.Routes))
	s.routeByID = make(map[string]int, len(s.Routes))
	for i, r := range s.Routes {
		if r.Name == "" {
			continue
		}
		s.routeByName[r.Name] = i
		if _, ok := s.routeByID[r.ID]; !ok {
			s.routeByID[r.ID] = i
		}
	}
	s.driverByID = make(map[string]int, len(s.Drivers))
	for i, d := range s.Drivers {
		if _, ok := s.driverByID[d.ID]; !ok {
			s.driverByID[d.ID] = i
		}
	}
}

// Ready reports whether at least one table holds records
func (s *Snapshot) Ready() bool {
	return len(s.Routes) > 0 || len(s.Drivers) > 0 || len(s.Trips) > 0
}

// RouteByName looks a route up by its exact name
func (s *Snapshot) RouteByName(name string) (model.Route, bool) {
	if i, ok := s.routeByName[name]; ok {
		return s.Routes[i], true
	}
	return model.Route{}, false
}

// RouteByKey looks a route up by its normalized name
func (s *Snapshot) RouteByKey(name string) (model.Route, bool) {
	if i, ok := s.routeByID[model.RouteID(name)]; ok {
		return s.Routes[i], true
	}
	return model.Route{}, false
}

// DriverByName looks a driver up by normalized full name
func (s *Snapshot) DriverByName(fullName string) (model.Driver, bool) {
	if i, ok := s.driverByID[model.DriverID(fullName)]; ok {
		return s.Drivers[i], true
	}
	return model.Driver{}, false
}

// DriversForRoute resolves the route's driver list. Names with no driver record are skipped.
func (s *Snapshot) DriversForRoute(r model.Route) []model.Driver {
	names := r.DriverNames()
	out := make([]model.Driver, 0, len(names))
	for _, n := range names {
		if d, ok := s.DriverByName(n); ok {
			out = append(out, d)
		}
	}
	return out
}

// RoutesForDriver resolves the driver's route list. Names with no route record are skipped.
func (s *Snapshot) RoutesForDriver(d model.Driver) []model.Route {
	names := d.RouteNames()
	out := make([]model.Route, 0, len(names))
	for _, n := range names {
		if r, ok := s.RouteByKey(n); ok {
			out = append(out, r)
		}
	}
	return out
}
