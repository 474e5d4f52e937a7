package catalog

import (
	"sync"

	"movieshows/internal/media"
)

// Empty-state copy shown in place of the item grid.
const (
	EmptyCatalogMessage = "No content loaded. Place your scraper output as content.json or data/content.json beside the app, or set MOVIESHOWS_CONTENT before start."
	NoMatchesMessage    = "No content matches your filters."
)

// State is the process-wide catalog. Every mutation recomputes the filtered
// view from scratch, so filter and search compose regardless of the order
// they were set.
type State struct {
	mu       sync.RWMutex
	matcher  matcher
	all      []media.Item
	byID     map[string]int
	filter   Filter
	search   string
	filtered []media.Item
}

// NewState returns an empty catalog. With transliterate set, search also
// ignores accents.
func NewState(transliterate bool) *State {
	return &State{
		matcher: matcher{transliterate: transliterate},
		byID:    map[string]int{},
		filter:  FilterAll,
	}
}

// SetAll replaces the catalog. Items keep their order.
func (s *State) SetAll(items []media.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = append([]media.Item(nil), items...)
	s.byID = make(map[string]int, len(s.all))
	for i, item := range s.all {
		if _, seen := s.byID[item.ID]; !seen {
			s.byID[item.ID] = i
		}
	}
	s.recompute()
}

func (s *State) SetFilter(filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if filter == "" {
		filter = FilterAll
	}
	s.filter = filter
	s.recompute()
}

// SetSearch stores the search text verbatim; matching is case-insensitive.
func (s *State) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = text
	s.recompute()
}

func (s *State) recompute() {
	match := s.matcher.compile(s.search)
	filtered := make([]media.Item, 0, len(s.all))
	for _, item := range s.all {
		if s.filter.Match(item) && match(item.Title) {
			filtered = append(filtered, item)
		}
	}
	s.filtered = filtered
}

// Filtered returns a copy of the current view.
func (s *State) Filtered() []media.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]media.Item(nil), s.filtered...)
}

// All returns a copy of the full catalog.
func (s *State) All() []media.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]media.Item(nil), s.all...)
}

func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.all)
}

func (s *State) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *State) Search() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

// Lookup finds an item by id.
func (s *State) Lookup(id string) (media.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return media.Item{}, false
	}
	return s.all[idx], true
}

// Resolve maps ids onto catalog items in the given order, skipping ids the
// catalog does not contain.
func (s *State) Resolve(ids []string) []media.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]media.Item, 0, len(ids))
	for _, id := range ids {
		if idx, ok := s.byID[id]; ok {
			out = append(out, s.all[idx])
		}
	}
	return out
}

// EmptyMessage explains an empty view, or returns "" when the view has items.
func (s *State) EmptyMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case len(s.filtered) > 0:
		return ""
	case len(s.all) == 0:
		return EmptyCatalogMessage
	default:
		return NoMatchesMessage
	}
}
