// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The file is decoded over Default(), so a config file only needs to name the
// values it overrides. An explicit 0 is kept, which lets the stats fallback
// policy be switched off.
package config
