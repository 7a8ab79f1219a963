package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/clinic-walk/leaderboard"
	"github.com/lixenwraith/clinic-walk/progress"
)

// HUDTop is how many leaderboard rows the HUD lists after a finish
const HUDTop = 10

// HUD text
const (
	hudTitle      = "KK Titiwangsa: Walkthrough"
	hudControls   = "WASD gerak, J/L pusing, Shift lari"
	hudControls2  = "E interaksi, M peta, N main baru"
	hudObjective  = "Objektif: Daftar > Jumpa Doktor > Ambil Ubat"
	hudRunning    = "(sedang berjalan)"
	hudFinished   = "Selesai!"
	hudStep1      = "1) Daftar di Pendaftaran"
	hudStep2      = "2) Jumpa doktor"
	hudStep3      = "3) Ambil ubat di Farmasi"
	hudTargetFmt  = "(Bilik Konsultasi %d)"
	hudTargetNone = "(bilik akan diberikan selepas daftar)"
	hudBoard      = "Leaderboard (Masa Terpantas)"
	hudBoardEmpty = "Tiada rekod lagi."
	hudAgain      = "N: Main Lagi   C: Kosongkan"
	hudNewGame    = "N: New Game"
	hudMuted      = "[bisu]"
)

// HUDState is the per-frame HUD model
type HUDState struct {
	CheckedIn bool
	Consulted bool
	GotMeds   bool
	Target    int
	Running   bool
	Elapsed   time.Duration
	Hint      string
	Muted     bool
	Entries   []leaderboard.Entry
	// LastID highlights the run just recorded
	LastID string
}

// Finished reports a completed, stopped run
func (s HUDState) Finished() bool {
	return s.CheckedIn && s.Consulted && s.GotMeds && !s.Running
}

// TimerLine is the stopwatch row
func (s HUDState) TimerLine() string {
	line := "Masa: " + progress.Format(s.Elapsed)
	if s.Running {
		line += " " + hudRunning
	}
	if s.CheckedIn && s.Consulted && s.GotMeds {
		line += " " + hudFinished
	}
	return line
}

// DrawHUD fills the panel at (x, y) of width w and height h
func DrawHUD(buf *Buffer, x, y, w, h int, s HUDState) {
	buf.Fill(x, y, x+w-1, y+h-1, RGBPanel)
	inner := w - 2
	row := y + 1
	put := func(text string, fg RGB) {
		if row < y+h {
			buf.Text(x+1, row, text, fg, inner)
		}
		row++
	}

	put(hudTitle, RGBAccent)
	put(hudControls, RGBPending)
	put(hudControls2, RGBPending)
	row++
	put(hudObjective, RGBPanelText)
	put(s.TimerLine(), RGBWhite)
	row++

	target := hudTargetNone
	if s.Target > 0 {
		target = fmt.Sprintf(hudTargetFmt, s.Target)
	}
	put(step(s.CheckedIn, hudStep1), stepColor(s.CheckedIn))
	put(step(s.Consulted, hudStep2), stepColor(s.Consulted))
	put("    "+target, stepColor(s.Consulted))
	put(step(s.GotMeds, hudStep3), stepColor(s.GotMeds))
	row++

	if s.Hint != "" {
		put("> "+s.Hint, RGBAccent)
		row++
	}
	if s.Muted {
		put(hudMuted, RGBPending)
	}

	if !s.Finished() {
		put(hudNewGame, RGBPending)
		return
	}

	put(hudBoard, RGBAccent)
	if len(s.Entries) == 0 {
		put(hudBoardEmpty, RGBPanelText)
	}
	for i, e := range s.Entries {
		if i >= HUDTop {
			break
		}
		fg := RGBPanelText
		if e.ID == s.LastID {
			fg = RGBDone
		}
		put(fmt.Sprintf("#%-2d %s  %s", i+1, progress.Format(e.Duration()), entryDate(e)), fg)
	}
	row++
	put(hudAgain, RGBPending)
}

func step(done bool, text string) string {
	if done {
		return "[x] " + text
	}
	return "[ ] " + text
}

func stepColor(done bool) RGB {
	if done {
		return RGBDone
	}
	return RGBPanelText
}

// entryDate shows the stored timestamp in local time, or raw if unparseable
func entryDate(e leaderboard.Entry) string {
	t, err := time.Parse(leaderboard.DateLayout, e.Date)
	if err != nil {
		return e.Date
	}
	return t.Local().Format("2006-01-02 15:04")
}
