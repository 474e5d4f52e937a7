package catalog

import (
	"fmt"
	"strings"

	"movieshows/internal/media"
)

// Filter selects a category of items.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterMovie      Filter = "movie"
	FilterTV         Filter = "tv"
	FilterComingSoon Filter = "comingSoon"
)

// Filters lists the selectable filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterMovie, FilterTV, FilterComingSoon}
}

// ParseFilter maps user input onto a Filter. Empty input means FilterAll.
func ParseFilter(value string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return FilterAll, nil
	case "movie", "movies":
		return FilterMovie, nil
	case "tv", "show", "shows":
		return FilterTV, nil
	case "comingsoon", "coming-soon", "coming_soon", "soon":
		return FilterComingSoon, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want all, movie, tv or coming-soon)", value)
	}
}

// Match reports whether item belongs to the filter's category.
func (f Filter) Match(item media.Item) bool {
	switch f {
	case FilterMovie:
		return item.Type == media.KindMovie
	case FilterTV:
		return item.Type == media.KindTV
	case FilterComingSoon:
		return item.ComingSoon
	default:
		return true
	}
}

func (f Filter) String() string {
	return string(f)
}
