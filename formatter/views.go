package formatter

import (
	"github.com/theoremus-urban-solutions/routedesk/engine"
	"github.com/theoremus-urban-solutions/routedesk/model"
	"github.com/theoremus-urban-solutions/routedesk/session"
)

// RouteCard is a route with the figures shown in lists and search results
type RouteCard struct {
	Route       model.Route       `json:"route"`
	Stats       engine.RouteStats `json:"stats"`
	DriverCount int               `json:"driverCount"`
	Popular     bool              `json:"popular"`
}

// RouteDetail is a route with its itineraries and resolved drivers
type RouteDetail struct {
	RouteCard
	Variants []model.Variant `json:"variants"`
	Drivers  []model.Driver  `json:"drivers"`
}

// DriverCard is a driver with the figures shown in lists
type DriverCard struct {
	Driver   model.Driver `json:"driver"`
	Earnings float64      `json:"earnings"`
	Top      bool         `json:"top"`
}

// DriverDetail is a driver with its routes and financials
type DriverDetail struct {
	DriverCard
	Routes     []string                    `json:"routes"`
	Financials engine.DriverFinancials     `json:"financials"`
	ByRoute    []engine.RouteEarningsEntry `json:"byRoute"`
}

// SearchView is the result of a route search
type SearchView struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Exact       []RouteCard `json:"exact"`
	Partial     []RouteCard `json:"partial"`
}

// ListView is one page of a filtered list
type ListView[T any] struct {
	Query   string `json:"query"`
	Sort    string `json:"sort"`
	Total   int    `json:"total"`
	Shown   int    `json:"shown"`
	HasMore bool   `json:"hasMore"`
	Items   []T    `json:"items"`
}

// NewRouteCard assembles a route card
func NewRouteCard(s *session.Session, r model.Route) RouteCard {
	return RouteCard{
		Route:       r,
		Stats:       s.RouteStats(r.Name),
		DriverCount: r.DriverCount(),
		Popular:     s.IsPopular(r.Name),
	}
}

// NewRouteDetail assembles a route detail view
func NewRouteDetail(s *session.Session, r model.Route) RouteDetail {
	return RouteDetail{
		RouteCard: NewRouteCard(s, r),
		Variants:  r.Variants(),
		Drivers:   s.DriversForRoute(r),
	}
}

// NewDriverCard assembles a driver card
func NewDriverCard(s *session.Session, d model.Driver) DriverCard {
	return DriverCard{
		Driver:   d,
		Earnings: s.DriverEarnings()[d.FullName],
		Top:      s.IsTopDriver(d),
	}
}

// NewDriverDetail assembles a driver detail view
func NewDriverDetail(s *session.Session, d model.Driver) DriverDetail {
	f := s.DriverFinancials(d.FullName)
	return DriverDetail{
		DriverCard: NewDriverCard(s, d),
		Routes:     d.RouteNames(),
		Financials: f,
		ByRoute:    f.RoutesByTotal(),
	}
}

// NewSearchView runs a search and wraps both result lists in route cards
func NewSearchView(s *session.Session, origin, destination string) SearchView {
	res := s.Search(origin, destination)
	v := SearchView{
		Origin:      origin,
		Destination: destination,
		Exact:       make([]RouteCard, 0, len(res.Exact)),
		Partial:     make([]RouteCard, 0, len(res.Partial)),
	}
	for _, r := range res.Exact {
		v.Exact = append(v.Exact, NewRouteCard(s, r))
	}
	for _, r := range res.Partial {
		v.Partial = append(v.Partial, NewRouteCard(s, r))
	}
	return v
}

// NewRouteList filters, sorts and pages the route list. pages is the number
// of load-more steps taken after the first page.
func NewRouteList(s *session.Session, query, order string, pages int) ListView[RouteCard] {
	routes := s.Routes(query, order)
	p := pageThrough(s.NewPager(), query, len(routes), pages)
	shown := engine.Page(routes, p)
	v := ListView[RouteCard]{Query: p.Query(), Sort: order, Total: len(routes), Shown: len(shown), HasMore: p.HasMore(len(routes))}
	v.Items = make([]RouteCard, 0, len(shown))
	for _, r := range shown {
		v.Items = append(v.Items, NewRouteCard(s, r))
	}
	return v
}

// NewDriverList filters, sorts and pages the driver list
func NewDriverList(s *session.Session, query, order string, pages int) ListView[DriverCard] {
	drivers := s.Drivers(query, order)
	p := pageThrough(s.NewPager(), query, len(drivers), pages)
	shown := engine.Page(drivers, p)
	v := ListView[DriverCard]{Query: p.Query(), Sort: order, Total: len(drivers), Shown: len(shown), HasMore: p.HasMore(len(drivers))}
	v.Items = make([]DriverCard, 0, len(shown))
	for _, d := range shown {
		v.Items = append(v.Items, NewDriverCard(s, d))
	}
	return v
}

func pageThrough(p *engine.Pager, query string, total, pages int) *engine.Pager {
	p.SetQuery(query)
	for i := 0; i < pages; i++ {
		p.LoadMore(total)
	}
	return p
}
