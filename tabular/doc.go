/*
Package tabular turns delimited text with a header row into field-keyed records.

Every data row becomes a Record keyed by the header names. Values that look
numeric are coerced to float64, "true"/"false" to bool, and empty cells to
nil; anything else stays a string. Records are then decoded into typed
structs with Decode, which relies on mapstructure tags.

# Sources

A source is either a local file path or an http(s) URL:

	f := tabular.NewFetcher(10 * time.Second)
	rows, err := f.Load(ctx, "routes", "data/routes.csv")
	routes, err := tabular.Decode[model.Route](rows)

Failures are reported as *LoadError carrying the table name and source.
*/
package tabular
