// Package catalog holds the loaded item list and derives the filtered view
// from the active type filter and search text.
package catalog
