package leaderboard

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MaxEntries is how many of the best runs are kept
const MaxEntries = 50

// DateLayout matches the ISO-8601 form browsers emit
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Insert returns entries plus e, sorted ascending by Ms and capped to
// MaxEntries. Equal times keep insertion order
func Insert(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	slices.SortStableFunc(out, func(a, b Entry) int {
		switch {
		case a.Ms < b.Ms:
			return -1
		case a.Ms > b.Ms:
			return 1
		}
		return 0
	})
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// Board is the in-process leaderboard. Store failures never surface: they are
// logged and the board continues with what it holds in memory
type Board struct {
	mu      sync.RWMutex
	store   Store
	clock   TimeProvider
	entries []Entry
	loaded  bool
}

func NewBoard(store Store, clock TimeProvider) *Board {
	return &Board{store: store, clock: clock}
}

// Load reads persisted entries once. Later calls are no-ops
func (b *Board) Load(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loaded {
		return
	}
	b.loaded = true

	entries, err := b.store.Load(ctx)
	if err != nil {
		log.Printf("leaderboard: load failed, starting empty: %v", err)
		return
	}
	// Stored data may come from older writers; normalize order and size
	for _, e := range entries {
		b.entries = Insert(b.entries, e)
	}
}

// Add records a finished run and persists the board
func (b *Board) Add(ctx context.Context, ms int64) Entry {
	e := Entry{
		ID:   uuid.NewString(),
		Date: b.clock.Now().UTC().Format(DateLayout),
		Ms:   ms,
	}

	b.mu.Lock()
	b.entries = Insert(b.entries, e)
	snapshot := slices.Clone(b.entries)
	b.mu.Unlock()

	if err := b.store.Save(ctx, snapshot); err != nil {
		log.Printf("leaderboard: save failed: %v", err)
	}
	return e
}

// Clear empties the board and the store
func (b *Board) Clear(ctx context.Context) {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()

	if err := b.store.Clear(ctx); err != nil {
		log.Printf("leaderboard: clear failed: %v", err)
	}
}

// Entries returns a copy of all kept entries, fastest first
func (b *Board) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.entries)
}

// Top returns up to n fastest entries
func (b *Board) Top(n int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n > len(b.entries) {
		n = len(b.entries)
	}
	return slices.Clone(b.entries[:n])
}

// Rank returns the 1-based position of the entry with id, 0 when absent
func (b *Board) Rank(id string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i, e := range b.entries {
		if e.ID == id {
			return i + 1
		}
	}
	return 0
}
