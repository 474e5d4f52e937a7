package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"movieshows/internal/media"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// withoutRaw drops the upstream records so JSON output stays canonical.
func withoutRaw(items []media.Item) []media.Item {
	out := make([]media.Item, len(items))
	for i, item := range items {
		item.Raw = nil
		out[i] = item
	}
	return out
}
