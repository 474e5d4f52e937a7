package interaction_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"movieshows/internal/interaction"
	"movieshows/internal/logging"
	"movieshows/internal/media"
	"movieshows/internal/statestore"
)

func item(id string) media.Item {
	return media.Item{ID: id, Title: "Title " + id, Type: media.KindMovie, VideoURL: id + ".mp4"}
}

func queueIDs(m *interaction.Manager) []string {
	queue := m.Queue()
	out := make([]string, len(queue))
	for i, entry := range queue {
		out[i] = entry.ID
	}
	return out
}

func newManager(t *testing.T) (*interaction.Manager, *statestore.MemoryStore) {
	t.Helper()
	store := statestore.NewMemoryStore()
	return interaction.Load(context.Background(), store, logging.NewNop()), store
}

func TestEnqueueThenAdvanceRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.Enqueue(ctx, item("a"))
	before := m.QueueLen()

	want := item("b")
	m.Enqueue(ctx, want)
	m.DequeueAt(ctx, 0)
	got, ok := m.Advance(ctx)
	if !ok || !reflect.DeepEqual(got, want) {
		t.Fatalf("Advance = %+v, %v; want %+v", got, ok, want)
	}
	if m.QueueLen() != before-1 {
		t.Fatalf("unexpected queue length %d", m.QueueLen())
	}
	current, ok := m.Current()
	if !ok || current.ID != "b" {
		t.Fatalf("Current = %+v, %v", current, ok)
	}
}

func TestEnqueueAdvanceOnEmptyQueue(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	want := item("x")
	m.Enqueue(ctx, want)
	got, ok := m.Advance(ctx)
	if !ok || !reflect.DeepEqual(got, want) {
		t.Fatalf("Advance = %+v, %v", got, ok)
	}
	if m.QueueLen() != 0 {
		t.Fatalf("queue should be back to empty, got %v", queueIDs(m))
	}
}

func TestAdvanceEmptyQueueChangesNothing(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.SetCurrent(item("playing"))
	if _, ok := m.Advance(ctx); ok {
		t.Fatal("expected no item from empty queue")
	}
	if current, _ := m.Current(); current.ID != "playing" {
		t.Fatalf("current changed to %q", current.ID)
	}
}

func TestEnqueueDuplicateIsNoop(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	if !m.Enqueue(ctx, item("dup")) {
		t.Fatal("first enqueue should change the queue")
	}
	other := item("dup")
	other.Title = "Different snapshot"
	if m.Enqueue(ctx, other) {
		t.Fatal("second enqueue should be a no-op")
	}
	if m.QueueLen() != 1 {
		t.Fatalf("queue length = %d, want 1", m.QueueLen())
	}
	if m.Queue()[0].Title != "Title dup" {
		t.Fatal("existing entry should be kept")
	}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	if !m.ToggleFavorite(ctx, "42") || !m.IsFavorite("42") {
		t.Fatal("expected favorite after first toggle")
	}
	if m.ToggleFavorite(ctx, "42") || m.IsFavorite("42") {
		t.Fatal("expected membership restored after second toggle")
	}
	m.ToggleLiked(ctx, "7")
	m.ToggleLiked(ctx, "7")
	if m.IsLiked("7") {
		t.Fatal("expected like membership restored")
	}
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	for _, id := range []string{"c", "a", "b"} {
		m.ToggleFavorite(ctx, id)
	}
	m.ToggleFavorite(ctx, "a")
	m.ToggleFavorite(ctx, "a")
	if got := m.Favorites(); !reflect.DeepEqual(got, []string{"c", "b", "a"}) {
		t.Fatalf("Favorites = %v", got)
	}
}

func TestDequeueAtOutOfRangeIsNoop(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.Enqueue(ctx, item("a"))
	for _, index := range []int{-1, 1, 5} {
		if m.DequeueAt(ctx, index) {
			t.Fatalf("DequeueAt(%d) should be a no-op", index)
		}
	}
	if m.QueueLen() != 1 {
		t.Fatalf("queue changed: %v", queueIDs(m))
	}
}

func TestReorder(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"b", "c", "a", "d"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 2, []string{"a", "c", "b", "d"}},
		{2, 2, []string{"a", "b", "c", "d"}},
		{0, 4, []string{"a", "b", "c", "d"}},
		{-1, 0, []string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		m, _ := newManager(t)
		for _, id := range []string{"a", "b", "c", "d"} {
			m.Enqueue(ctx, item(id))
		}
		m.Reorder(ctx, tc.from, tc.to)
		if got := queueIDs(m); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Reorder(%d,%d) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestPlayAtRemovesEntryAndSetsCurrent(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	for _, id := range []string{"a", "b", "c"} {
		m.Enqueue(ctx, item(id))
	}
	played, ok := m.PlayAt(ctx, 1)
	if !ok || played.ID != "b" {
		t.Fatalf("PlayAt = %+v, %v", played, ok)
	}
	if got := queueIDs(m); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("queue = %v", got)
	}
	if _, ok := m.PlayAt(ctx, 9); ok {
		t.Fatal("PlayAt out of range should fail")
	}
}

func TestSetCurrentDoesNotTouchQueue(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.Enqueue(ctx, item("a"))
	m.SetCurrent(item("z"))
	if got := queueIDs(m); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("queue = %v", got)
	}
}

func TestToggleCurrentRequiresCurrentItem(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	if _, ok := m.ToggleCurrentFavorite(ctx); ok {
		t.Fatal("expected no-op without current item")
	}
	m.SetCurrent(item("now"))
	if on, ok := m.ToggleCurrentLiked(ctx); !ok || !on || !m.IsLiked("now") {
		t.Fatalf("ToggleCurrentLiked = %v, %v", on, ok)
	}
	if on, ok := m.ToggleCurrentFavorite(ctx); !ok || !on || !m.IsFavorite("now") {
		t.Fatalf("ToggleCurrentFavorite = %v, %v", on, ok)
	}
}

func TestQueueCountLabel(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	if got := m.QueueCountLabel(); got != "0 items" {
		t.Fatalf("label = %q", got)
	}
	m.Enqueue(ctx, item("a"))
	if got := m.QueueCountLabel(); got != "1 item" {
		t.Fatalf("label = %q", got)
	}
	m.Enqueue(ctx, item("b"))
	if got := m.QueueCountLabel(); got != "2 items" {
		t.Fatalf("label = %q", got)
	}
}

func TestStatePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)
	m.ToggleFavorite(ctx, "f1")
	m.ToggleFavorite(ctx, "f2")
	m.ToggleLiked(ctx, "l1")
	m.Enqueue(ctx, item("q1"))
	m.Enqueue(ctx, item("q2"))
	m.Reorder(ctx, 1, 0)
	m.SetCurrent(item("q9"))

	reloaded := interaction.Load(ctx, store, logging.NewNop())
	if got := reloaded.Favorites(); !reflect.DeepEqual(got, []string{"f1", "f2"}) {
		t.Fatalf("favorites = %v", got)
	}
	if !reloaded.IsLiked("l1") {
		t.Fatal("expected like to persist")
	}
	if got := queueIDs(reloaded); !reflect.DeepEqual(got, []string{"q2", "q1"}) {
		t.Fatalf("queue = %v", got)
	}
	if queued := reloaded.Queue()[0]; queued.VideoURL != "q2.mp4" || queued.Title != "Title q2" {
		t.Fatalf("queue snapshot lost fields: %+v", queued)
	}
	if _, ok := reloaded.Current(); ok {
		t.Fatal("current item should not persist")
	}
}

func TestCorruptStateLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := statestore.NewMemoryStore()
	_ = store.Set(ctx, interaction.KeyFavorites, []byte(`{not json`))
	_ = store.Set(ctx, interaction.KeyLiked, []byte(`"string"`))
	_ = store.Set(ctx, interaction.KeyQueue, []byte(`[{"id":"ok","title":"OK"},{"id":"ok","title":"Dup"},{"title":"no id"}]`))

	m := interaction.Load(ctx, store, logging.NewNop())
	if len(m.Favorites()) != 0 || len(m.Liked()) != 0 {
		t.Fatalf("expected corrupt sets to load empty: %v %v", m.Favorites(), m.Liked())
	}
	if got := queueIDs(m); !reflect.DeepEqual(got, []string{"ok"}) {
		t.Fatalf("queue = %v", got)
	}
}

type failingStore struct{ statestore.Store }

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

func TestStoreFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	m := interaction.Load(ctx, failingStore{}, logging.NewNop())
	if !m.ToggleFavorite(ctx, "x") || !m.Enqueue(ctx, item("y")) {
		t.Fatal("mutations should apply in memory despite write failures")
	}
	if !m.IsFavorite("x") || m.QueueLen() != 1 {
		t.Fatal("in-memory state lost")
	}
}
