// Package leaderboard keeps the fastest completed runs and persists them
// through a pluggable store.
package leaderboard

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/lixenwraith/clinic-walk/leaderboard Store
//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/lixenwraith/clinic-walk/leaderboard TimeProvider

// StorageKey namespaces persisted entries in every backend
const StorageKey = "kk_titi_leaderboard_v1"

// ErrNoClient is returned by the Redis store when constructed without a client
var ErrNoClient = errors.New("leaderboard: no redis client")

// Entry is one completed run
type Entry struct {
	ID   string `json:"id"`
	Date string `json:"date"` // RFC 3339, UTC, millisecond precision
	Ms   int64  `json:"ms"`
}

// Duration returns the run time
func (e Entry) Duration() time.Duration {
	return time.Duration(e.Ms) * time.Millisecond
}

// Store persists the whole entry list under one key
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
	Clear(ctx context.Context) error
}

type TimeProvider interface {
	Now() time.Time
}
