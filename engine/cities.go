package engine

import (
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/routedesk/model"
)

// Cities returns the distinct trimmed origin and destination names of all
// routes, sorted by Russian collation.
func Cities(routes []model.Route) []string {
	set := make(map[string]struct{}, len(routes)*2)
	out := make([]string, 0, len(routes)*2)
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" {
			return
		}
		if _, ok := set[c]; ok {
			return
		}
		set[c] = struct{}{}
		out = append(out, c)
	}
	for _, r := range routes {
		add(r.OriginFull)
		add(r.DestinationFull)
	}
	col := newCollator()
	slices.SortStableFunc(out, col.CompareString)
	return out
}

// SuggestCities filters the city index for autocomplete. The query is trimmed
// and matched case-insensitively as a substring; an empty query returns the
// first limit cities. limit <= 0 means no cap.
func SuggestCities(cities []string, query string, limit int) []string {
	lower := newLower()
	q := lower.String(strings.TrimSpace(query))
	out := make([]string, 0)
	for _, c := range cities {
		if limit > 0 && len(out) >= limit {
			break
		}
		if q == "" || containsFold(lower, c, q) {
			out = append(out, c)
		}
	}
	return out
}
