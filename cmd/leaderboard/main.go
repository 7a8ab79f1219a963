// leaderboard browses and clears the stored fastest runs using the same
// store configuration as the game.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rivo/tview"

	"github.com/lixenwraith/clinic-walk/config"
	"github.com/lixenwraith/clinic-walk/engine"
	"github.com/lixenwraith/clinic-walk/leaderboard"
	"github.com/lixenwraith/clinic-walk/progress"
)

var storeFlag = flag.String("store", "", "leaderboard store: memory, file or redis")

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *storeFlag != "" {
		cfg.Store.Kind = config.StoreKind(*storeFlag)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	ctx := context.Background()
	board := leaderboard.NewBoard(store, engine.NewMonotonicTimeProvider())
	board.Load(ctx)

	ui := newBrowser(board)
	if err := ui.app.SetRoot(ui.pages, true).Run(); err != nil {
		log.Fatalf("ui: %v", err)
	}
}

// openStore mirrors the game's backend choice but reports Redis failures
// instead of silently browsing an empty memory store
func openStore(cfg *config.Config) (leaderboard.Store, func(), error) {
	switch cfg.Store.Kind {
	case config.StoreMemory:
		return leaderboard.NewMemoryStore(), func() {}, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		return leaderboard.NewRedisStore(client), func() { _ = client.Close() }, nil
	}
	return leaderboard.NewFileStore(cfg.Store.DataDir), func() {}, nil
}

type browser struct {
	app    *tview.Application
	pages  *tview.Pages
	list   *tview.List
	detail *tview.TextView
	status *tview.TextView
	board  *leaderboard.Board
}

func newBrowser(board *leaderboard.Board) *browser {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorBlack
	tview.Styles.BorderColor = tcell.ColorGold
	tview.Styles.TitleColor = tcell.ColorGold

	ui := &browser{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		list:   tview.NewList().ShowSecondaryText(false),
		detail: tview.NewTextView().SetDynamicColors(true),
		status: tview.NewTextView().SetDynamicColors(true),
		board:  board,
	}
	ui.list.SetBorder(true).SetTitle(" Leaderboard (Masa Terpantas) ")
	ui.detail.SetBorder(true).SetTitle(" Rekod ")
	ui.status.SetText(" [gold]j/k[-] pilih  [gold]c[-] kosongkan  [gold]q[-] keluar")

	ui.list.SetChangedFunc(func(index int, _, _ string, _ rune) {
		ui.showDetail(index)
	})

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(ui.list, 0, 2, true).
			AddItem(ui.detail, 0, 1, false), 0, 1, true).
		AddItem(ui.status, 1, 0, false)
	ui.pages.AddPage("main", root, true, true)

	ui.app.SetInputCapture(ui.handleKey)
	ui.refresh()
	return ui
}

func (ui *browser) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if name, _ := ui.pages.GetFrontPage(); name != "main" {
		return ev
	}
	switch ev.Rune() {
	case 'q':
		ui.app.Stop()
		return nil
	case 'j':
		return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	case 'k':
		return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	case 'c':
		ui.confirmClear()
		return nil
	}
	return ev
}

func (ui *browser) confirmClear() {
	modal := tview.NewModal().
		SetText("Kosongkan semua rekod?").
		AddButtons([]string{"Ya", "Batal"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Ya" {
				ui.board.Clear(context.Background())
				ui.refresh()
			}
			ui.pages.RemovePage("confirm")
			ui.app.SetFocus(ui.list)
		})
	ui.pages.AddPage("confirm", modal, true, true)
}

func (ui *browser) refresh() {
	ui.list.Clear()
	rows := entryRows(ui.board.Entries())
	if len(rows) == 0 {
		ui.list.AddItem("Tiada rekod lagi.", "", 0, nil)
		ui.detail.SetText("")
		return
	}
	for _, row := range rows {
		ui.list.AddItem(row, "", 0, nil)
	}
	ui.showDetail(0)
}

func (ui *browser) showDetail(index int) {
	entries := ui.board.Entries()
	if index < 0 || index >= len(entries) {
		ui.detail.SetText("")
		return
	}
	ui.detail.SetText(entryDetail(index, entries[index]))
}

// entryRows formats one list row per entry, fastest first
func entryRows(entries []leaderboard.Entry) []string {
	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = fmt.Sprintf("#%-3d %s  %s", i+1, progress.Format(e.Duration()), displayDate(e.Date))
	}
	return rows
}

func entryDetail(index int, e leaderboard.Entry) string {
	return fmt.Sprintf("[gold]Kedudukan[-]  #%d\n[gold]Masa[-]       %s\n[gold]Tarikh[-]     %s\n[gold]ID[-]         %s\n",
		index+1, progress.Format(e.Duration()), displayDate(e.Date), e.ID)
}

func displayDate(s string) string {
	t, err := time.Parse(leaderboard.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
