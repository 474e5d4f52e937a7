package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"movieshows/internal/shell"
)

func newQueueCommand(ctx *commandContext) *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and manage the playback queue",
	}

	queueCmd.AddCommand(newQueueListCommand(ctx))
	queueCmd.AddCommand(newQueueAddCommand(ctx))
	queueCmd.AddCommand(newQueueRemoveCommand(ctx))
	queueCmd.AddCommand(newQueueMoveCommand(ctx))
	queueCmd.AddCommand(newQueueNextCommand(ctx))
	queueCmd.AddCommand(newQueuePlayCommand(ctx))

	return queueCmd
}

func newQueueListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queued items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(_ context.Context, s *shell.Shell) error {
				queue := s.Queue()
				if jsonOutput {
					return writeJSON(cmd, withoutRaw(queue))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Queue (%s)\n", s.Interaction().QueueCountLabel())
				if len(queue) == 0 {
					fmt.Fprintln(out, "Queue is empty")
					return nil
				}
				rows := make([][]string, 0, len(queue))
				for i, item := range queue {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						item.ID,
						item.Title,
						item.MetaLine(false),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "ID", "Title", "Info"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newQueueAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <id>...",
		Short: "Append catalog items to the queue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				out := cmd.OutOrStdout()
				for _, id := range args {
					added, err := s.Enqueue(ctx, id)
					if err != nil {
						return err
					}
					if added {
						fmt.Fprintf(out, "Queued %s\n", id)
					} else {
						fmt.Fprintf(out, "%s is already queued\n", id)
					}
				}
				return nil
			})
		},
	}
}

func newQueueRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove the entry at a queue position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				out := cmd.OutOrStdout()
				if !s.Interaction().DequeueAt(ctx, index) {
					fmt.Fprintf(out, "Nothing queued at position %d\n", index+1)
					return nil
				}
				fmt.Fprintf(out, "Removed position %d (%s left)\n", index+1, s.Interaction().QueueCountLabel())
				return nil
			})
		},
	}
}

func newQueueMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a queue entry to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				out := cmd.OutOrStdout()
				if !s.Interaction().Reorder(ctx, from, to) {
					fmt.Fprintln(out, "Queue unchanged")
					return nil
				}
				fmt.Fprintf(out, "Moved position %d to %d\n", from+1, to+1)
				return nil
			})
		},
	}
}

func newQueueNextCommand(ctx *commandContext) *cobra.Command {
	var toggles playerToggles

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Play the head of the queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				out := cmd.OutOrStdout()
				item, ok := s.Interaction().Advance(ctx)
				if !ok {
					fmt.Fprintln(out, "Queue is empty")
					return nil
				}
				renderNowPlaying(out, item, shouldColorize(out))
				toggles.apply(ctx, out, s)
				return nil
			})
		},
	}
	toggles.bind(cmd)
	return cmd
}

func newQueuePlayCommand(ctx *commandContext) *cobra.Command {
	var toggles playerToggles

	cmd := &cobra.Command{
		Use:   "play <position>",
		Short: "Play a queue entry now and remove it from the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				out := cmd.OutOrStdout()
				item, ok := s.Interaction().PlayAt(ctx, index)
				if !ok {
					fmt.Fprintf(out, "Nothing queued at position %d\n", index+1)
					return nil
				}
				renderNowPlaying(out, item, shouldColorize(out))
				toggles.apply(ctx, out, s)
				return nil
			})
		},
	}
	toggles.bind(cmd)
	return cmd
}
