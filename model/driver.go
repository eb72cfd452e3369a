package model

// RouteNames returns the trimmed, non-empty route names the driver serves
func (d Driver) RouteNames() []string { return SplitList(d.AvailableRoutes) }

// SearchKeys are the fields a driver list is filtered on
func (d Driver) SearchKeys() []string { return []string{d.FullName, d.Phone} }
