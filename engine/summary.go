package engine

import "github.com/theoremus-urban-solutions/routedesk/model"

// Summary counts the loaded records
type Summary struct {
	TotalTrips   int `json:"totalTrips"`
	TotalCities  int `json:"totalCities"`
	TotalDrivers int `json:"totalDrivers"`
	TotalRoutes  int `json:"totalRoutes"`
}

// Summarize counts trips, distinct cities, drivers and routes
func Summarize(routes []model.Route, drivers []model.Driver, trips []model.Trip) Summary {
	return Summary{
		TotalTrips:   len(trips),
		TotalCities:  len(Cities(routes)),
		TotalDrivers: len(drivers),
		TotalRoutes:  len(routes),
	}
}
