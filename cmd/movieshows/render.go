package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"movieshows/internal/media"
	"movieshows/internal/shell"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const emptyFavoritesMessage = "No favorites yet. Start liking videos!"

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(text, color string, colorize bool) string {
	if !colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}

// itemMarks renders the favorite, liked and coming-soon markers for an item.
func itemMarks(s *shell.Shell, item media.Item) string {
	marks := make([]string, 0, 3)
	if s.IsFavorite(item.ID) {
		marks = append(marks, "★")
	}
	if s.IsLiked(item.ID) {
		marks = append(marks, "♥")
	}
	if item.ComingSoon {
		marks = append(marks, "soon")
	}
	return strings.Join(marks, " ")
}

// renderItemTable lays out items with 1-based positions.
func renderItemTable(s *shell.Shell, items []media.Item) string {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.ID,
			item.Title,
			item.KindLabel(),
			item.Year.String(),
			itemMarks(s, item),
		})
	}
	return renderTable(
		[]string{"#", "ID", "Title", "Type", "Year", "Marks"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

// renderNowPlaying describes the item handed to the player.
func renderNowPlaying(out io.Writer, item media.Item, colorize bool) {
	fmt.Fprintf(out, "%s %s\n", paint("Now playing:", ansiBold, colorize), item.Title)
	if meta := item.MetaLine(true); meta != "" {
		fmt.Fprintf(out, "  %s\n", meta)
	}
	if item.Description != "" {
		fmt.Fprintf(out, "  %s\n", item.Description)
	}
	if item.Playable() {
		fmt.Fprintf(out, "  Video:  %s\n", item.VideoURL)
	} else {
		fmt.Fprintf(out, "  %s\n", paint("No video available for this title", ansiYellow, colorize))
	}
	fmt.Fprintf(out, "  Poster: %s\n", item.DisplayThumbnail())
}

// renderItemDetail prints every field of one item.
func renderItemDetail(out io.Writer, s *shell.Shell, item media.Item, colorize bool) {
	fmt.Fprintln(out, paint(item.Title, ansiBlue, colorize))
	rows := [][2]string{
		{"ID", item.ID},
		{"Meta", item.MetaLine(true)},
		{"Description", item.Description},
		{"Thumbnail", item.DisplayThumbnail()},
		{"Video", item.VideoURL},
		{"Favorite", yesNo(s.IsFavorite(item.ID))},
		{"Liked", yesNo(s.IsLiked(item.ID))},
	}
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(out, "  %-12s %s\n", row[0]+":", value)
	}
}

// parsePosition converts a 1-based CLI position to a queue index.
func parsePosition(value string) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || pos < 1 {
		return 0, fmt.Errorf("invalid position %q (positions start at 1)", value)
	}
	return pos - 1, nil
}
