package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"movieshows/internal/shell"
)

// playerToggles are the favorite and like buttons shown beside the player.
// They act on whatever the command just started playing.
type playerToggles struct {
	favorite bool
	like     bool
}

func (p *playerToggles) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.favorite, "favorite", false, "Toggle favorite on the item that starts playing")
	cmd.Flags().BoolVar(&p.like, "like", false, "Toggle like on the item that starts playing")
}

func (p playerToggles) apply(ctx context.Context, out io.Writer, s *shell.Shell) {
	current, ok := s.Current()
	if !ok {
		return
	}
	if p.favorite {
		if on, ok := s.Interaction().ToggleCurrentFavorite(ctx); ok {
			fmt.Fprintln(out, favoriteMessage(current.Title, on))
		}
	}
	if p.like {
		if on, ok := s.Interaction().ToggleCurrentLiked(ctx); ok {
			fmt.Fprintln(out, likeMessage(current.Title, on))
		}
	}
}

func favoriteMessage(label string, on bool) string {
	if on {
		return fmt.Sprintf("Added %s to favorites", label)
	}
	return fmt.Sprintf("Removed %s from favorites", label)
}

func likeMessage(label string, on bool) string {
	if on {
		return "Liked " + label
	}
	return "Unliked " + label
}

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var toggles playerToggles

	cmd := &cobra.Command{
		Use:   "play <id>",
		Short: "Play a catalog item now without touching the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				item, err := s.Play(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				renderNowPlaying(out, item, shouldColorize(out))
				toggles.apply(ctx, out, s)
				return nil
			})
		},
	}
	toggles.bind(cmd)
	return cmd
}

func newFavoriteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle an item in favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				label := args[0]
				if item, ok := s.Lookup(args[0]); ok {
					label = item.Title
				}
				on := s.Interaction().ToggleFavorite(ctx, args[0])
				fmt.Fprintln(cmd.OutOrStdout(), favoriteMessage(label, on))
				return nil
			})
		},
	}
}

func newLikeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Toggle the like on an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(ctx context.Context, s *shell.Shell) error {
				label := args[0]
				if item, ok := s.Lookup(args[0]); ok {
					label = item.Title
				}
				on := s.Interaction().ToggleLiked(ctx, args[0])
				fmt.Fprintln(cmd.OutOrStdout(), likeMessage(label, on))
				return nil
			})
		},
	}
}

func newFavoritesCommand(ctx *commandContext) *cobra.Command {
	var liked bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite (or liked) items in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withShell(cmd, func(_ context.Context, s *shell.Shell) error {
				items := s.FavoriteItems()
				if liked {
					items = s.LikedItems()
				}
				if jsonOutput {
					return writeJSON(cmd, withoutRaw(items))
				}
				out := cmd.OutOrStdout()
				if len(items) == 0 {
					if liked {
						fmt.Fprintln(out, "No liked videos yet.")
					} else {
						fmt.Fprintln(out, emptyFavoritesMessage)
					}
					return nil
				}
				fmt.Fprintln(out, renderItemTable(s, items))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&liked, "liked", false, "List liked items instead of favorites")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
