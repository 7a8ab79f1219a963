package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/clinic-walk/audio"
	"github.com/lixenwraith/clinic-walk/config"
	"github.com/lixenwraith/clinic-walk/engine"
	"github.com/lixenwraith/clinic-walk/input"
	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/leaderboard"
	"github.com/lixenwraith/clinic-walk/render"
)

const (
	frameInterval = time.Second / 60
	hudInterval   = 100 * time.Millisecond
	eventBuffer   = 256
)

var (
	debugFlag  = flag.Bool("debug", false, "write logs to logs/clinic-walk.log")
	seedFlag   = flag.Uint64("seed", 0, "fixed shuffle seed (0 uses the clock)")
	layoutFlag = flag.String("layout", "", "floor plan YAML (default: embedded clinic)")
	keymapFlag = flag.String("keymap", "", "keymap override YAML")
	storeFlag  = flag.String("store", "", "leaderboard store: memory, file or redis")
	muteFlag   = flag.Bool("mute", false, "start with sound muted")
)

func main() {
	var screen tcell.Screen

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCLINIC-WALK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		log.Println("No .env file found")
	}

	base, err := loadLayout(cfg.LayoutPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "layout: %v\n", err)
		os.Exit(1)
	}
	keys, err := loadKeys(cfg.KeymapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keymap: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	clock := engine.NewMonotonicTimeProvider()
	board := leaderboard.NewBoard(store, clock)
	board.Load(ctx)

	acfg := audio.DefaultConfig()
	acfg.Enabled = cfg.Audio.Enabled
	acfg.MasterVolume = cfg.Audio.Volume
	sound := audio.New(acfg)
	defer sound.Close()
	sound.SetMuted(*muteFlag)

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	screen.HideCursor()

	session := engine.NewSession(base, engine.Options{
		Seed:  cfg.Seed,
		Clock: clock,
		Board: board,
		Audio: sound,
		Keys:  keys,
	})

	if err := run(ctx, screen, fini, session); err != nil {
		fini()
		fmt.Fprintf(os.Stderr, "clinic-walk: %v\n", err)
		os.Exit(1)
	}
}

// run drives the poller and the frame loop until quit, signal or poller exit
func run(ctx context.Context, screen tcell.Screen, fini func(), session *engine.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, eventBuffer)

	// Poller: forwards terminal events; returns when the screen is finalized
	g.Go(func() error {
		defer cancel()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	// Frame loop: sole owner of the session
	g.Go(func() error {
		defer fini()
		defer cancel()

		view := render.NewView(screen)
		frameTicker := time.NewTicker(frameInterval)
		defer frameTicker.Stop()
		hudTicker := time.NewTicker(hudInterval)
		defer hudTicker.Stop()

		last := time.Now()
		elapsed := session.Progress().ElapsedNow()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if session.HandleKey(ctx, ev) {
						log.Println("quit requested")
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}

			case <-hudTicker.C:
				elapsed = session.Progress().ElapsedNow()

			case now := <-frameTicker.C:
				session.Frame(ctx, now.Sub(last).Seconds())
				last = now

				f := session.View()
				if f.HUD.Running {
					f.HUD.Elapsed = elapsed
				}
				view.Draw(f)
			}
		}
	})

	return g.Wait()
}

func applyFlags(cfg *config.Config) {
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *layoutFlag != "" {
		cfg.LayoutPath = *layoutFlag
	}
	if *keymapFlag != "" {
		cfg.KeymapPath = *keymapFlag
	}
	if *storeFlag != "" {
		cfg.Store.Kind = config.StoreKind(*storeFlag)
	}
}

func loadLayout(path string) (layout.Layout, error) {
	if path == "" {
		l, _ := layout.Default()
		return l, nil
	}
	l, _, err := layout.LoadFile(path)
	if err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}

func loadKeys(path string) (*input.KeyMap, error) {
	keys := input.DefaultKeyMap()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	override, err := input.LoadKeyMap(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return input.MergeKeyMap(keys, override), nil
}
