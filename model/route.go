package model

import "strings"

const (
	variantSeparator  = " || "
	listSeparator     = ";"
	endpointSeparator = " - "
)

// DriverNames returns the trimmed, non-empty driver names listed for the route
func (r Route) DriverNames() []string { return SplitList(r.AvailableDrivers) }

// DriverCount is the number of entries in the driver list as written, empty entries included
func (r Route) DriverCount() int {
	if r.AvailableDrivers == "" {
		return 0
	}
	return len(strings.Split(r.AvailableDrivers, listSeparator))
}

// Variants parses the route's itinerary description
func (r Route) Variants() []Variant { return ParseVariants(r.DetailVariants) }

// Endpoints parses the route name into origin and destination. The canonical
// " - " delimiter is tried first, then a bare hyphen.
func (r Route) Endpoints() (origin, destination string, ok bool) {
	name := strings.TrimSpace(r.Name)
	sep := endpointSeparator
	if !strings.Contains(name, sep) {
		sep = "-"
	}
	parts := strings.SplitN(name, sep, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	origin, destination = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if origin == "" || destination == "" {
		return "", "", false
	}
	return origin, destination, true
}

// ParseVariants splits s into itineraries. Itineraries with fewer than two cities are dropped.
func ParseVariants(s string) []Variant {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []Variant
	for _, v := range strings.Split(s, variantSeparator) {
		cities := strings.Split(v, "-")
		if len(cities) < 2 {
			continue
		}
		for i := range cities {
			cities[i] = strings.TrimSpace(cities[i])
		}
		out = append(out, Variant{
			Departure:    cities[0],
			Intermediate: append([]string{}, cities[1:len(cities)-1]...),
			Destination:  cities[len(cities)-1],
		})
	}
	return out
}

// SplitList splits a ';'-separated list, trimming entries and dropping empty ones
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
