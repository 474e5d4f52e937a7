// Package source discovers and loads the catalog payload.
//
// A Resolver walks an ordered list of candidates (an injected payload, an
// explicit override, then the conventional file names) and stops at the first
// location whose payload normalizes to at least one item. Locations are
// fetched through a Router that sends http(s) URLs to HTTPFetcher and
// everything else to FileFetcher. Failures never escape Resolve; each one is
// logged at WARN and recorded as an Attempt so the CLI can explain where the
// catalog came from.
package source
