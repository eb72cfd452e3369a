package engine

import (
	"slices"

	"golang.org/x/text/cases"

	"github.com/theoremus-urban-solutions/routedesk/model"
)

// Sort order names
const (
	SortNone     = ""
	SortAlpha    = "alpha"
	SortTrips    = "trips"
	SortDrivers  = "drivers"
	SortRoutes   = "routes"
	SortEarnings = "earnings"
)

// Pipeline filters a record list on its display keys and applies one named
// sort order. It is not safe for concurrent use.
type Pipeline[T any] struct {
	// Keys returns the strings a query is matched against
	Keys func(T) []string
	// Orders maps a sort name to a comparison; an unknown name keeps load order
	Orders map[string]func(a, b T) int
}

// Apply returns the records whose keys contain query (case-insensitive),
// sorted stably by order. The input slice is not modified.
func (p Pipeline[T]) Apply(items []T, query, order string) []T {
	lower := newLower()
	q := lower.String(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q == "" || p.matches(lower, it, q) {
			out = append(out, it)
		}
	}
	if cmp, ok := p.Orders[order]; ok && cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

func (p Pipeline[T]) matches(lower cases.Caser, it T, q string) bool {
	for _, k := range p.Keys(it) {
		if containsFold(lower, k, q) {
			return true
		}
	}
	return false
}

// RoutePipeline filters routes by name and sorts them by trip count
// ("trips"), listed driver count ("drivers") or name ("alpha").
func RoutePipeline(stats map[string]RouteStats) Pipeline[model.Route] {
	col := newCollator()
	return Pipeline[model.Route]{
		Keys: func(r model.Route) []string { return []string{r.Name} },
		Orders: map[string]func(a, b model.Route) int{
			SortTrips: func(a, b model.Route) int {
				return stats[b.Name].TripCount - stats[a.Name].TripCount
			},
			SortDrivers: func(a, b model.Route) int {
				return b.DriverCount() - a.DriverCount()
			},
			SortAlpha: func(a, b model.Route) int {
				return col.CompareString(a.Name, b.Name)
			},
		},
	}
}

// DriverPipeline filters drivers by full name or phone and sorts them by
// declared route count ("routes"), earnings ("earnings") or name ("alpha").
func DriverPipeline(earnings map[string]float64) Pipeline[model.Driver] {
	col := newCollator()
	return Pipeline[model.Driver]{
		Keys: model.Driver.SearchKeys,
		Orders: map[string]func(a, b model.Driver) int{
			SortRoutes: func(a, b model.Driver) int {
				return b.TotalRouteCount - a.TotalRouteCount
			},
			SortEarnings: func(a, b model.Driver) int {
				ea, eb := earnings[a.FullName], earnings[b.FullName]
				switch {
				case ea > eb:
					return -1
				case ea < eb:
					return 1
				}
				return 0
			},
			SortAlpha: func(a, b model.Driver) int {
				return col.CompareString(a.FullName, b.FullName)
			},
		},
	}
}
