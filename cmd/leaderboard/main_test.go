package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/clinic-walk/config"
	"github.com/lixenwraith/clinic-walk/leaderboard"
)

func TestEntryRows(t *testing.T) {
	rows := entryRows([]leaderboard.Entry{
		{ID: "a", Date: "garbage", Ms: 61_230},
		{ID: "b", Date: "garbage", Ms: 75_000},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "#1   01:01.23  garbage", rows[0])
	assert.True(t, strings.HasPrefix(rows[1], "#2   01:15.00"))
}

func TestEntryDetail(t *testing.T) {
	d := entryDetail(0, leaderboard.Entry{ID: "abc", Date: "x", Ms: 1_000})
	assert.Contains(t, d, "#1")
	assert.Contains(t, d, "00:01.00")
	assert.Contains(t, d, "abc")
}

func TestOpenStoreFile(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Kind: config.StoreFile, DataDir: t.TempDir()}}
	store, closeStore, err := openStore(cfg)
	require.NoError(t, err)
	defer closeStore()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []leaderboard.Entry{{ID: "a", Ms: 5}}))
	entries, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBrowserEmptyBoard(t *testing.T) {
	board := leaderboard.NewBoard(leaderboard.NewMemoryStore(), nil)
	board.Load(context.Background())
	ui := newBrowser(board)
	assert.Equal(t, 1, ui.list.GetItemCount())
	text, _ := ui.list.GetItemText(0)
	assert.Equal(t, "Tiada rekod lagi.", text)
}
