package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"movieshows/internal/catalog"
	"movieshows/internal/media"
	"movieshows/internal/shell"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the loaded catalog",
	}
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogShowCommand(ctx))
	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var filterFlag string
	var searchFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items matching the filter and search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := catalog.ParseFilter(filterFlag)
			if err != nil {
				return err
			}
			return ctx.withShell(cmd, func(_ context.Context, s *shell.Shell) error {
				s.Catalog().SetFilter(filter)
				s.Catalog().SetSearch(searchFlag)
				items := s.Filtered()

				if jsonOutput {
					return writeJSON(cmd, withoutRaw(items))
				}
				out := cmd.OutOrStdout()
				if msg := s.EmptyMessage(); msg != "" {
					fmt.Fprintln(out, msg)
					return nil
				}
				fmt.Fprintln(out, renderItemTable(s, items))
				fmt.Fprintf(out, "%d of %d items\n", len(items), s.Catalog().Len())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filterFlag, "filter", "f", "all", "Filter: "+strings.Join(filterNames(), ", "))
	_ = cmd.RegisterFlagCompletionFunc("filter", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return filterNames(), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "Case-insensitive title search")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func filterNames() []string {
	filters := catalog.Filters()
	names := make([]string, len(filters))
	for i, filter := range filters {
		names[i] = filter.String()
	}
	return names
}

func newCatalogShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(_ context.Context, s *shell.Shell) error {
				item, ok := s.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w: %q", shell.ErrUnknownItem, args[0])
				}
				if jsonOutput {
					return writeJSON(cmd, withoutRaw([]media.Item{item})[0])
				}
				out := cmd.OutOrStdout()
				renderItemDetail(out, s, item, shouldColorize(out))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
