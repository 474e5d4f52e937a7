// Package main hosts the MovieShows CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration once, resolves the catalog
// payload, and renders the browse view, the playback queue and the favorites
// list to the terminal. Favorites, likes and the queue are persisted through
// the configured state backend so they carry over between invocations.
//
// Keep this package lean: behaviour lives in the internal packages and the
// commands here only translate arguments and render results.
package main
