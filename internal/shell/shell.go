package shell

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"movieshows/internal/catalog"
	"movieshows/internal/config"
	"movieshows/internal/interaction"
	"movieshows/internal/logging"
	"movieshows/internal/media"
	"movieshows/internal/source"
	"movieshows/internal/statestore"
)

// Resolver produces catalog items. *source.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context) source.Result
}

// Shell owns the catalog and interaction state for one process.
type Shell struct {
	catalog     *catalog.State
	interaction *interaction.Manager
	resolver    Resolver
	logger      *slog.Logger

	reloading atomic.Bool
	mu        sync.RWMutex
	last      source.Result
}

// New loads interaction state from store. The catalog starts empty until
// Reload runs.
func New(ctx context.Context, cfg *config.Config, store statestore.Store, resolver Resolver, logger *slog.Logger) *Shell {
	transliterate := false
	if cfg != nil {
		transliterate = cfg.Search.Transliterate
	}
	return &Shell{
		catalog:     catalog.NewState(transliterate),
		interaction: interaction.Load(ctx, store, logger),
		resolver:    resolver,
		logger:      logging.NewComponentLogger(logger, "shell"),
	}
}

// Reload resolves the payload and replaces the catalog. A reload requested
// while another is running is ignored and reports false.
func (s *Shell) Reload(ctx context.Context) bool {
	if !s.reloading.CompareAndSwap(false, true) {
		s.logger.Info("reload already in progress; request ignored")
		return false
	}
	defer s.reloading.Store(false)

	if s.resolver == nil {
		return true
	}
	result := s.resolver.Resolve(ctx)
	s.catalog.SetAll(result.Items)

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	origin := "none"
	if result.Source != nil {
		origin = result.Source.Location
	}
	s.logger.Info("catalog reloaded",
		logging.Int("items", len(result.Items)),
		logging.String("source", origin),
		logging.Int("attempts", len(result.Attempts)),
	)
	return true
}

// LastResult returns the most recent resolution outcome.
func (s *Shell) LastResult() source.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Shell) Catalog() *catalog.State {
	return s.catalog
}

func (s *Shell) Interaction() *interaction.Manager {
	return s.interaction
}

// Filtered is the browse view.
func (s *Shell) Filtered() []media.Item {
	return s.catalog.Filtered()
}

func (s *Shell) EmptyMessage() string {
	return s.catalog.EmptyMessage()
}

func (s *Shell) Queue() []media.Item {
	return s.interaction.Queue()
}

func (s *Shell) IsFavorite(id string) bool {
	return s.interaction.IsFavorite(id)
}

func (s *Shell) IsLiked(id string) bool {
	return s.interaction.IsLiked(id)
}

func (s *Shell) Current() (media.Item, bool) {
	return s.interaction.Current()
}

// FavoriteItems resolves favorites against the catalog in the order they
// were added. Ids the catalog no longer carries are skipped.
func (s *Shell) FavoriteItems() []media.Item {
	return s.catalog.Resolve(s.interaction.Favorites())
}

// LikedItems resolves liked ids the same way as FavoriteItems.
func (s *Shell) LikedItems() []media.Item {
	return s.catalog.Resolve(s.interaction.Liked())
}

// Lookup finds a catalog item, falling back to queued snapshots so entries
// whose id left the catalog stay addressable.
func (s *Shell) Lookup(id string) (media.Item, bool) {
	if item, ok := s.catalog.Lookup(id); ok {
		return item, true
	}
	for _, queued := range s.interaction.Queue() {
		if queued.ID == id {
			return queued, true
		}
	}
	return media.Item{}, false
}

// Play makes the item with id current without touching the queue.
func (s *Shell) Play(ctx context.Context, id string) (media.Item, error) {
	item, ok := s.Lookup(id)
	if !ok {
		return media.Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	s.interaction.SetCurrent(item)
	logging.WithContext(logging.WithItemID(ctx, id), s.logger).Info("playing",
		logging.Bool("playable", item.Playable()))
	return item, nil
}

// Enqueue adds the catalog item with id to the queue.
func (s *Shell) Enqueue(ctx context.Context, id string) (bool, error) {
	item, ok := s.catalog.Lookup(id)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return s.interaction.Enqueue(ctx, item), nil
}
