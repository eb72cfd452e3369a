// Package formatter renders engine results for the command line.
//
// This package is organized into:
// - views.go: view structs assembling a route or driver with its derived figures
// - json.go: JSON serialization
// - text.go: styled terminal text
package formatter
