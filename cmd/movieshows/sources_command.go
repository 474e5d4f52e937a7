package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"movieshows/internal/shell"
	"movieshows/internal/source"
)

type attemptJSON struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Outcome  string `json:"outcome"`
	Items    int    `json:"items"`
	Error    string `json:"error,omitempty"`
}

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Show where the catalog payload was looked for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(_ context.Context, s *shell.Shell) error {
				result := s.LastResult()
				if jsonOutput {
					return writeJSON(cmd, attemptsJSON(result.Attempts))
				}

				out := cmd.OutOrStdout()
				if len(result.Attempts) == 0 {
					fmt.Fprintln(out, "No payload locations were tried")
					return nil
				}
				rows := make([][]string, 0, len(result.Attempts))
				for i, attempt := range result.Attempts {
					errText := ""
					if attempt.Err != nil {
						errText = attempt.Err.Error()
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						string(attempt.Candidate.Kind),
						attempt.Candidate.Location,
						string(attempt.Outcome),
						strconv.Itoa(attempt.Items),
						errText,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Kind", "Location", "Outcome", "Items", "Error"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				if result.Loaded() {
					fmt.Fprintf(out, "Loaded %d items from %s\n", len(result.Items), result.Source.Location)
				} else {
					fmt.Fprintln(out, s.EmptyMessage())
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func attemptsJSON(attempts []source.Attempt) []attemptJSON {
	out := make([]attemptJSON, 0, len(attempts))
	for _, attempt := range attempts {
		entry := attemptJSON{
			Kind:     string(attempt.Candidate.Kind),
			Name:     attempt.Candidate.Name,
			Location: attempt.Candidate.Location,
			Outcome:  string(attempt.Outcome),
			Items:    attempt.Items,
		}
		if attempt.Err != nil {
			entry.Error = attempt.Err.Error()
		}
		out = append(out, entry)
	}
	return out
}
