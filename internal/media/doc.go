// Package media turns loosely structured scraper records into the canonical
// catalog item model.
//
// Upstream feeds are uncontrolled: the same attribute arrives under several
// field names, numbers arrive as strings, and whole payloads come in four
// different top-level shapes. The package resolves each canonical attribute
// through an ordered alias table (first present value wins), derives a stable
// identifier and a coarse movie/tv classification, and deduplicates a payload
// by identifier with the first occurrence winning.
//
// The alias tables in fields.go are the wire contract with the scraper; keep
// their order intact when adding new aliases.
package media
