package interaction

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"

	"movieshows/internal/logging"
	"movieshows/internal/media"
	"movieshows/internal/statestore"
)

// Durable record keys.
const (
	KeyFavorites = "favorites"
	KeyLiked     = "liked"
	KeyQueue     = "queue"
)

// Manager is the state owner for favorites, likes, the queue and the current
// item. Methods are safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	store     statestore.Store
	logger    *slog.Logger
	favorites *idSet
	liked     *idSet
	queue     []media.Item
	current   *media.Item
}

// Load restores state from store. Missing keys and values that do not parse
// start empty; neither is an error.
func Load(ctx context.Context, store statestore.Store, logger *slog.Logger) *Manager {
	m := &Manager{
		store:  store,
		logger: logging.NewComponentLogger(logger, "interaction"),
	}

	var favorites, liked []string
	var queue []media.Item
	m.restore(ctx, KeyFavorites, &favorites)
	m.restore(ctx, KeyLiked, &liked)
	m.restore(ctx, KeyQueue, &queue)

	m.favorites = newIDSet(favorites)
	m.liked = newIDSet(liked)
	m.queue = dedupeQueue(queue)

	m.logger.Debug("interaction state loaded",
		logging.Int("favorites", m.favorites.len()),
		logging.Int("liked", m.liked.len()),
		logging.Int("queue", len(m.queue)),
	)
	return m
}

func (m *Manager) restore(ctx context.Context, key string, target any) {
	if m.store == nil {
		return
	}
	data, ok, err := m.store.Get(ctx, key)
	if err != nil {
		logging.WarnWithContext(m.logger, "failed to read interaction state", "state_read_failed",
			logging.String("key", key),
			logging.Error(err),
			logging.String(logging.FieldImpact, "starting with an empty "+key+" list"),
			logging.String(logging.FieldErrorHint, "check the state backend is readable"),
		)
		return
	}
	if !ok || len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		logging.WarnWithContext(m.logger, "discarding unreadable interaction state", "state_corrupt",
			logging.String("key", key),
			logging.Error(err),
			logging.String(logging.FieldImpact, "starting with an empty "+key+" list"),
			logging.String(logging.FieldErrorHint, "the next change overwrites the stored value"),
		)
	}
}

// dedupeQueue drops snapshots without an id and later duplicates.
func dedupeQueue(queue []media.Item) []media.Item {
	out := make([]media.Item, 0, len(queue))
	seen := make(map[string]struct{}, len(queue))
	for _, item := range queue {
		if item.ID == "" {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// persist writes one key. Errors are logged, never returned.
func (m *Manager) persist(ctx context.Context, key string, value any) {
	if m.store == nil {
		return
	}
	data, err := json.Marshal(value)
	if err == nil {
		err = m.store.Set(ctx, key, data)
	}
	if err != nil {
		logging.WarnWithContext(m.logger, "failed to persist interaction state", "state_write_failed",
			logging.String("key", key),
			logging.Error(err),
			logging.String(logging.FieldImpact, "change is kept for this session only"),
			logging.String(logging.FieldErrorHint, "check free space and permissions on the state directory"),
		)
	}
}

func (m *Manager) persistQueue(ctx context.Context) {
	snapshot := m.queue
	if snapshot == nil {
		snapshot = []media.Item{}
	}
	m.persist(ctx, KeyQueue, snapshot)
}

// ToggleFavorite flips favorite membership and reports the new state.
func (m *Manager) ToggleFavorite(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	on := m.favorites.toggle(id)
	m.persist(ctx, KeyFavorites, m.favorites.list())
	logging.WithContext(logging.WithItemID(ctx, id), m.logger).Debug("favorite toggled", logging.Bool("favorite", on))
	return on
}

// ToggleLiked flips liked membership and reports the new state.
func (m *Manager) ToggleLiked(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	on := m.liked.toggle(id)
	m.persist(ctx, KeyLiked, m.liked.list())
	logging.WithContext(logging.WithItemID(ctx, id), m.logger).Debug("like toggled", logging.Bool("liked", on))
	return on
}

// Enqueue appends item unless an entry with the same id is already queued.
// It reports whether the queue changed.
func (m *Manager) Enqueue(ctx context.Context, item media.Item) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == "" || m.queuedAt(item.ID) >= 0 {
		return false
	}
	m.queue = append(m.queue, item)
	m.persistQueue(ctx)
	return true
}

func (m *Manager) queuedAt(id string) int {
	for i, queued := range m.queue {
		if queued.ID == id {
			return i
		}
	}
	return -1
}

// DequeueAt removes the entry at index. Out of range is a no-op.
func (m *Manager) DequeueAt(ctx context.Context, index int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.queue) {
		return false
	}
	m.queue = append(m.queue[:index], m.queue[index+1:]...)
	m.persistQueue(ctx)
	return true
}

// Reorder moves the entry at from so that it ends up at position to. Either
// index out of range leaves the queue untouched.
func (m *Manager) Reorder(ctx context.Context, from, to int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.queue)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	item := m.queue[from]
	m.queue = append(m.queue[:from], m.queue[from+1:]...)
	m.queue = append(m.queue[:to], append([]media.Item{item}, m.queue[to:]...)...)
	m.persistQueue(ctx)
	return true
}

// Advance pops the head of the queue and makes it current. An empty queue
// changes nothing and returns false.
func (m *Manager) Advance(ctx context.Context) (media.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return media.Item{}, false
	}
	next := m.queue[0]
	m.queue = append([]media.Item(nil), m.queue[1:]...)
	m.current = &next
	m.persistQueue(ctx)
	return next, true
}

// PlayAt makes the queue entry at index current and removes it from the queue.
func (m *Manager) PlayAt(ctx context.Context, index int) (media.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.queue) {
		return media.Item{}, false
	}
	item := m.queue[index]
	m.queue = append(m.queue[:index], m.queue[index+1:]...)
	m.current = &item
	m.persistQueue(ctx)
	return item, true
}

// SetCurrent plays item directly without touching the queue.
func (m *Manager) SetCurrent(item media.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &item
}

// ToggleCurrentFavorite acts on the current item. ok is false when nothing
// is playing.
func (m *Manager) ToggleCurrentFavorite(ctx context.Context) (on, ok bool) {
	current, ok := m.Current()
	if !ok {
		return false, false
	}
	return m.ToggleFavorite(ctx, current.ID), true
}

// ToggleCurrentLiked acts on the current item. ok is false when nothing is
// playing.
func (m *Manager) ToggleCurrentLiked(ctx context.Context) (on, ok bool) {
	current, ok := m.Current()
	if !ok {
		return false, false
	}
	return m.ToggleLiked(ctx, current.ID), true
}

func (m *Manager) IsFavorite(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.favorites.has(id)
}

func (m *Manager) IsLiked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liked.has(id)
}

// Favorites returns favorite ids in the order they were added.
func (m *Manager) Favorites() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.favorites.list()
}

// Liked returns liked ids in the order they were added.
func (m *Manager) Liked() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liked.list()
}

// Queue returns a copy of the queue; positions are stable until the next mutation.
func (m *Manager) Queue() []media.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]media.Item{}, m.queue...)
}

func (m *Manager) QueueLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// QueueCountLabel renders the queue length as "1 item" or "n items".
func (m *Manager) QueueCountLabel() string {
	n := m.QueueLen()
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}

// Current returns the item playing now.
func (m *Manager) Current() (media.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return media.Item{}, false
	}
	return *m.current, true
}
