// Package utils provides internal utility functions shared by the engine and formatters.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Rounding that matches the half-up convention of the source spreadsheets
//   - Locale-aware money formatting
package utils
