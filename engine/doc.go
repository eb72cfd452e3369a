// Package engine implements the matching and aggregation operations over a
// loaded snapshot: the city index, route matching, route statistics, driver
// financials and the filter/sort pipeline used by list views.
//
// Every function is pure: it reads its inputs, allocates its result and keeps
// no state between calls. Memoization belongs to the caller (see package session).
package engine
