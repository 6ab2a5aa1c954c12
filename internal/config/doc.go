// Package config loads, normalizes, and validates shrink configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads optional TOML files. A missing config file is normal:
// the defaults reproduce the fixed ffmpeg argument set, so the tool works with
// no configuration at all.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
