package model

// Column headers of the source extracts
const (
	ColRouteName        = "Маршрут"
	ColOriginFull       = "Откуда полный"
	ColDestinationFull  = "Куда полный"
	ColDetailVariants   = "Детализация (варианты)"
	ColAvailableDrivers = "Доступные исполнители"

	ColDriverName      = "ФИО"
	ColPhone           = "Номер телефона"
	ColAvailableRoutes = "Доступные маршруты"
	ColTotalRouteCount = "Общее количество маршрутов"

	ColTripCost = "СЕБЕСТОИМОСТЬ МАРШРУТА"
)

// Route is a named origin-destination corridor
type Route struct {
	ID               string `mapstructure:"-" json:"id"`
	Name             string `mapstructure:"Маршрут" json:"name"`
	OriginFull       string `mapstructure:"Откуда полный" json:"originFull"`
	DestinationFull  string `mapstructure:"Куда полный" json:"destinationFull"`
	DetailVariants   string `mapstructure:"Детализация (варианты)" json:"detailVariants"`
	AvailableDrivers string `mapstructure:"Доступные исполнители" json:"availableDrivers"`
}

// Driver is a driver record. TotalRouteCount is the declared count and is not
// reconciled with AvailableRoutes.
type Driver struct {
	ID              string `mapstructure:"-" json:"id"`
	FullName        string `mapstructure:"ФИО" json:"fullName"`
	Phone           string `mapstructure:"Номер телефона" json:"phone"`
	AvailableRoutes string `mapstructure:"Доступные маршруты" json:"availableRoutes"`
	TotalRouteCount int    `mapstructure:"Общее количество маршрутов" json:"totalRouteCount"`
}

// Trip is one historical completed movement
type Trip struct {
	RouteName  string  `mapstructure:"Маршрут" json:"routeName"`
	DriverName string  `mapstructure:"ФИО" json:"driverName"`
	Cost       float64 `mapstructure:"СЕБЕСТОИМОСТЬ МАРШРУТА" json:"cost"`
}

// Variant is one itinerary of a route's detail description
type Variant struct {
	Departure    string   `json:"departure"`
	Intermediate []string `json:"intermediate"`
	Destination  string   `json:"destination"`
}
