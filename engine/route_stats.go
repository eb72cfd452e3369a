package engine

import (
	"github.com/theoremus-urban-solutions/routedesk/model"
	"github.com/theoremus-urban-solutions/routedesk/utils"
)

// StatsPolicy holds the placeholder figures reported for routes without trip history
type StatsPolicy struct {
	FallbackTripCount   int
	FallbackAverageCost float64
	FallbackTotalCost   float64
}

// DefaultStatsPolicy matches the figures shown for routes with no recorded trips
var DefaultStatsPolicy = StatsPolicy{
	FallbackTripCount:   3,
	FallbackAverageCost: 118333,
	FallbackTotalCost:   355000,
}

// RouteStats are the trip figures of one route. Estimated is set when any
// figure comes from the fallback policy.
type RouteStats struct {
	TripCount   int     `json:"tripCount"`
	AverageCost float64 `json:"averageCost"`
	TotalCost   float64 `json:"totalCost"`
	Estimated   bool    `json:"estimated"`
}

// CalculateRouteStats aggregates the trips whose route name equals routeName.
// Only positive costs count towards the total and the average.
func CalculateRouteStats(trips []model.Trip, routeName string, p StatsPolicy) RouteStats {
	var matching []model.Trip
	for _, t := range trips {
		if t.RouteName == routeName {
			matching = append(matching, t)
		}
	}
	return statsOf(matching, p)
}

// CalculateAllRouteStats computes the stats of every route in one pass over trips.
func CalculateAllRouteStats(routes []model.Route, trips []model.Trip, p StatsPolicy) map[string]RouteStats {
	byRoute := make(map[string][]model.Trip, len(routes))
	for _, t := range trips {
		byRoute[t.RouteName] = append(byRoute[t.RouteName], t)
	}
	out := make(map[string]RouteStats, len(routes))
	for _, r := range routes {
		out[r.Name] = statsOf(byRoute[r.Name], p)
	}
	return out
}

func statsOf(matching []model.Trip, p StatsPolicy) RouteStats {
	if len(matching) == 0 {
		return RouteStats{
			TripCount:   p.FallbackTripCount,
			AverageCost: p.FallbackAverageCost,
			TotalCost:   p.FallbackTotalCost,
			Estimated:   true,
		}
	}
	var total float64
	priced := 0
	for _, t := range matching {
		if t.Cost > 0 {
			total += t.Cost
			priced++
		}
	}
	if priced == 0 {
		return RouteStats{
			TripCount:   len(matching),
			AverageCost: p.FallbackAverageCost,
			TotalCost:   p.FallbackTotalCost,
			Estimated:   true,
		}
	}
	return RouteStats{
		TripCount:   len(matching),
		AverageCost: utils.Round(total / float64(priced)),
		TotalCost:   total,
	}
}

// IsPopular reports whether a route has more trips than threshold
func IsPopular(s RouteStats, threshold int) bool {
	return s.TripCount > threshold
}
