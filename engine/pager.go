package engine

// DefaultPageSize is the number of list entries shown before "load more"
const DefaultPageSize = 12

// Pager tracks a load-more limit for a filtered list. The limit only grows,
// except when the filter query changes, which resets it to one page.
type Pager struct {
	pageSize int
	limit    int
	query    string
}

// NewPager creates a pager showing pageSize entries per step
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize, limit: pageSize}
}

// SetQuery records the current filter query and resets the limit if it changed
func (p *Pager) SetQuery(q string) bool {
	if q == p.query {
		return false
	}
	p.query = q
	p.limit = p.pageSize
	return true
}

// Query returns the last recorded query
func (p *Pager) Query() string { return p.query }

// Limit returns the number of entries visible out of total
func (p *Pager) Limit(total int) int {
	return min(p.limit, max(total, 0))
}

// HasMore reports whether entries beyond the limit remain
func (p *Pager) HasMore(total int) bool { return p.limit < total }

// LoadMore grows the limit by one page, never past total
func (p *Pager) LoadMore(total int) int {
	if p.limit < total {
		p.limit = min(p.limit+p.pageSize, total)
	}
	return p.Limit(total)
}

// Page returns the visible prefix of items
func Page[T any](items []T, p *Pager) []T {
	return items[:p.Limit(len(items))]
}
