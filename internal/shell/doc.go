// Package shell wires the catalog, payload resolver and interaction state
// into the single process-wide object the CLI renders from.
package shell
