// Package status holds lock-free counters written by the frame loop and read by the debug overlay.
package status

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Keys written by the session
const (
	KeyFrames     = "frame.count"
	KeyFPS        = "frame.fps"
	KeyNewGames   = "game.new"
	KeyFinished   = "game.finished"
	KeySeed       = "game.seed"
	KeyColliders  = "world.colliders"
	KeyGrounded   = "player.grounded"
	KeyPosX       = "player.x"
	KeyPosZ       = "player.z"
	KeyYaw        = "player.yaw"
	KeyStage      = "progress.stage"
	KeyUnreached  = "layout.unreached"
	KeyHeldKeys   = "input.held"
	KeyStoreError = "store.errors"
)

// Table maps keys to lazily allocated metrics of type T
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first use.
// Callers cache the pointer and write to it without locking
func (t *Table[T]) Get(key string) *T {
	t.mu.RLock()
	ptr, ok := t.items[key]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	t.items[key] = ptr
	return ptr
}

func (t *Table[T]) Has(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.items[key]
	return ok
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

func (t *Table[T]) each(fn func(key string, ptr *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for k, p := range t.items {
		fn(k, p)
	}
}

// Registry groups metric tables by value type
type Registry struct {
	Bools  *Table[atomic.Bool]
	Ints   *Table[atomic.Int64]
	Floats *Table[Float]
	Labels *Table[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  newTable[atomic.Bool](),
		Ints:   newTable[atomic.Int64](),
		Floats: newTable[Float](),
		Labels: newTable[Label](),
	}
}

// Len returns the number of metrics across all tables
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Labels.Len()
}

// Line is one formatted overlay row
type Line struct {
	Key   string
	Value string
}

// Snapshot formats every metric, sorted by key
func (r *Registry) Snapshot() []Line {
	lines := make([]Line, 0, r.Len())
	r.Bools.each(func(k string, p *atomic.Bool) {
		lines = append(lines, Line{k, fmt.Sprintf("%t", p.Load())})
	})
	r.Ints.each(func(k string, p *atomic.Int64) {
		lines = append(lines, Line{k, fmt.Sprintf("%d", p.Load())})
	})
	r.Floats.each(func(k string, p *Float) {
		lines = append(lines, Line{k, fmt.Sprintf("%.2f", p.Get())})
	})
	r.Labels.each(func(k string, p *Label) {
		lines = append(lines, Line{k, p.Get()})
	})
	sort.Slice(lines, func(i, j int) bool { return lines[i].Key < lines[j].Key })
	return lines
}
