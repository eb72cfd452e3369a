package engine

import (
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/routedesk/model"
	"github.com/theoremus-urban-solutions/routedesk/utils"
)

// RouteEarnings is a driver's aggregate on a single route
type RouteEarnings struct {
	Count      int     `json:"count"`
	TotalPrice float64 `json:"totalPrice"`
	AvgPrice   float64 `json:"avgPrice"`
}

// RouteEarningsEntry pairs a route name with its aggregate
type RouteEarningsEntry struct {
	Route string `json:"route"`
	RouteEarnings
}

// DriverFinancials summarizes a driver's trips
type DriverFinancials struct {
	TotalTrips    int                      `json:"totalTrips"`
	TotalEarnings float64                  `json:"totalEarnings"`
	AvgTripCost   float64                  `json:"avgTripCost"`
	PerRoute      map[string]RouteEarnings `json:"perRoute"`
}

// ResolveDriverFinancials aggregates the trips whose driver name equals
// driverName. Costs are summed as recorded, zero or not. A driver without
// trips gets zero figures.
func ResolveDriverFinancials(trips []model.Trip, driverName string) DriverFinancials {
	f := DriverFinancials{PerRoute: map[string]RouteEarnings{}}
	for _, t := range trips {
		if t.DriverName != driverName {
			continue
		}
		f.TotalTrips++
		f.TotalEarnings += t.Cost

		re := f.PerRoute[t.RouteName]
		re.Count++
		re.TotalPrice += t.Cost
		re.AvgPrice = utils.Round(re.TotalPrice / float64(re.Count))
		f.PerRoute[t.RouteName] = re
	}
	if f.TotalTrips > 0 {
		f.AvgTripCost = utils.Round(f.TotalEarnings / float64(f.TotalTrips))
	}
	return f
}

// RoutesByTotal returns the per-route breakdown ordered by total price,
// highest first. Equal totals are ordered by route name.
func (f DriverFinancials) RoutesByTotal() []RouteEarningsEntry {
	out := make([]RouteEarningsEntry, 0, len(f.PerRoute))
	for name, re := range f.PerRoute {
		out = append(out, RouteEarningsEntry{Route: name, RouteEarnings: re})
	}
	col := newCollator()
	slices.SortFunc(out, func(a, b RouteEarningsEntry) int {
		switch {
		case a.TotalPrice > b.TotalPrice:
			return -1
		case a.TotalPrice < b.TotalPrice:
			return 1
		}
		if c := col.CompareString(a.Route, b.Route); c != 0 {
			return c
		}
		return strings.Compare(a.Route, b.Route)
	})
	return out
}

// DriverEarnings sums trip costs per driver name over the whole trip table.
// Trips without a driver name are ignored.
func DriverEarnings(trips []model.Trip) map[string]float64 {
	out := map[string]float64{}
	for _, t := range trips {
		if t.DriverName == "" {
			continue
		}
		out[t.DriverName] += t.Cost
	}
	return out
}

// IsTopDriver reports whether a driver's declared route count exceeds threshold
func IsTopDriver(d model.Driver, threshold int) bool {
	return d.TotalRouteCount > threshold
}
