// Package config loads, normalizes, and validates MovieShows configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MOVIESHOWS_SOURCE. The Config type centralizes where catalog payloads are
// discovered, where interaction state is persisted, and how logs are written.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
