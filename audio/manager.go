package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues; implementations never block the frame loop
type Player interface {
	Play(c Cue)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// Nop is the silent player used when audio is disabled or unavailable
type Nop struct {
	mu    sync.Mutex
	muted bool
}

func (n *Nop) Play(Cue) {}

func (n *Nop) SetMuted(m bool) {
	n.mu.Lock()
	n.muted = m
	n.mu.Unlock()
}

func (n *Nop) Muted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.muted
}

func (n *Nop) Close() {}

// Manager mixes cues onto the system speaker
type Manager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewManager creates an uninitialized manager
func NewManager(cfg *Config) *Manager {
	return &Manager{cfg: cfg, mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	rate := beep.SampleRate(m.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	s := Build(c, m.cfg)
	if s == nil {
		log.Printf("audio: unknown cue %d", c)
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	if muted && m.initialized {
		speaker.Lock()
		m.mixer.Clear()
		speaker.Unlock()
	}
}

func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Close silences the mixer. beep has no speaker shutdown, so the device stays open
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// New returns a speaker-backed player, falling back to Nop when audio is
// disabled or the device cannot be opened
func New(cfg *Config) Player {
	if !cfg.Enabled {
		return &Nop{}
	}
	m := NewManager(cfg)
	if err := m.Initialize(); err != nil {
		log.Printf("audio: %v, continuing silent", err)
		return &Nop{}
	}
	return m
}
