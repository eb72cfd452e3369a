package engine

import (
	"strings"

	"github.com/theoremus-urban-solutions/routedesk/model"
)

// MatchResult holds the routes found for an origin/destination pair. Both
// lists keep the order of the route table and never share a route.
type MatchResult struct {
	Exact   []model.Route `json:"exact"`
	Partial []model.Route `json:"partial"`
}

// Empty reports whether nothing matched
func (m MatchResult) Empty() bool { return len(m.Exact) == 0 && len(m.Partial) == 0 }

// MatchRoutes classifies routes against origin and destination.
//
// A route is exact when its name contains both cities and contains either
// "origin - destination" or "origin-destination". Otherwise it is partial when
// its itinerary description contains both cities. Comparisons are plain
// case-sensitive substring tests on the strings as given.
func MatchRoutes(routes []model.Route, origin, destination string) MatchResult {
	return match(routes, origin, destination, isExactByName)
}

// MatchRoutesByEndpoints is MatchRoutes with the exact rule replaced by a
// comparison of the route name's parsed endpoints, which avoids false
// positives when one city name is a substring of another.
func MatchRoutesByEndpoints(routes []model.Route, origin, destination string) MatchResult {
	return match(routes, origin, destination, isExactByEndpoints)
}

func match(routes []model.Route, origin, destination string, exact func(model.Route, string, string) bool) MatchResult {
	res := MatchResult{Exact: []model.Route{}, Partial: []model.Route{}}
	if origin == "" || destination == "" {
		return res
	}
	for _, r := range routes {
		switch {
		case exact(r, origin, destination):
			res.Exact = append(res.Exact, r)
		case strings.Contains(r.DetailVariants, origin) && strings.Contains(r.DetailVariants, destination):
			res.Partial = append(res.Partial, r)
		}
	}
	return res
}

func isExactByName(r model.Route, origin, destination string) bool {
	name := r.Name
	if !strings.Contains(name, origin) || !strings.Contains(name, destination) {
		return false
	}
	return strings.Contains(name, origin+" - "+destination) || strings.Contains(name, origin+"-"+destination)
}

func isExactByEndpoints(r model.Route, origin, destination string) bool {
	o, d, ok := r.Endpoints()
	return ok && o == origin && d == destination
}
