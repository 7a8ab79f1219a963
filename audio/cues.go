// Package audio synthesizes short feedback chimes for checkpoints and resets.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a feedback sound
type Cue int

const (
	CueCheckIn Cue = iota
	CueConsult
	CueMeds
	CueReset
	CueNewGame

	cueCount
)

var cueNames = [cueCount]string{"check_in", "consult", "meds", "reset", "new_game"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Config holds synthesis parameters
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   [cueCount]float64
}

// DefaultConfig returns audible defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes:   [cueCount]float64{0.6, 0.6, 0.8, 0.4, 0.4},
	}
}

// Build synthesizes the streamer for c, nil for an unknown cue
func Build(c Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case CueCheckIn:
		// Single bell, A5 with an octave overtone
		d := 300 * time.Millisecond
		s = beep.Mix(
			newVolume(tone(880, d, WaveSine, rate), 0.7),
			newVolume(tone(1760, d, WaveSine, rate), 0.3),
		)
	case CueConsult:
		// Rising fourth, E5 to A5
		s = beep.Seq(
			tone(659.25, 150*time.Millisecond, WaveSine, rate),
			tone(880, 200*time.Millisecond, WaveSine, rate),
		)
	case CueMeds:
		// Major arpeggio, C5 E5 G5 C6
		s = beep.Seq(
			tone(523.25, 110*time.Millisecond, WaveSquare, rate),
			tone(659.25, 110*time.Millisecond, WaveSquare, rate),
			tone(783.99, 110*time.Millisecond, WaveSquare, rate),
			tone(1046.5, 260*time.Millisecond, WaveSquare, rate),
		)
	case CueReset:
		d := 180 * time.Millisecond
		s = NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 20*time.Millisecond, 120*time.Millisecond, rate)
	case CueNewGame:
		s = beep.Seq(
			tone(440, 120*time.Millisecond, WaveSaw, rate),
			tone(659.25, 160*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
	return newVolume(s, cfg.CueVolumes[c]*cfg.MasterVolume)
}
