// Package config loads process settings from the environment and starting
// rosters from YAML, with embedded presets as the fallback.
package config
