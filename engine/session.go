// Package engine owns the walkthrough session: the layout context rebuilt on
// every new game, the frame loop step and the clock it runs on.
package engine

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/clinic-walk/audio"
	"github.com/lixenwraith/clinic-walk/geometry"
	"github.com/lixenwraith/clinic-walk/input"
	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/leaderboard"
	"github.com/lixenwraith/clinic-walk/physics"
	"github.com/lixenwraith/clinic-walk/player"
	"github.com/lixenwraith/clinic-walk/progress"
	"github.com/lixenwraith/clinic-walk/render"
	"github.com/lixenwraith/clinic-walk/shuffle"
	"github.com/lixenwraith/clinic-walk/status"
)

// MaxFrameDt caps one frame's integration step after a stall
const MaxFrameDt = 0.1

// Options configures a session; nil collaborators get in-memory defaults
type Options struct {
	// Seed fixes the shuffle base term; zero uses wall-clock milliseconds
	Seed    uint64
	Clock   TimeProvider
	Board   *leaderboard.Board
	Audio   audio.Player
	Metrics *status.Registry
	Keys    *input.KeyMap
}

// Session is the layout context: the sanitized base layout, the current
// shuffled copy and everything derived from it. Owned by the frame loop
type Session struct {
	clock    TimeProvider
	seed     uint64
	counter  uint32
	base     layout.Layout
	shuffler *shuffle.Shuffler

	layout     layout.Layout
	scene      geometry.Scene
	world      *physics.World
	controller *player.Controller
	progress   *progress.Progress

	board  *leaderboard.Board
	audio  audio.Player
	keys   *input.KeyMap
	held   *input.HeldKeys
	edges  *input.Tracker
	result leaderboard.Entry
	saved  bool

	ShowMinimap   bool
	HeadingLocked bool
	ShowDebug     bool

	metrics  *status.Registry
	mFrames  *atomic.Int64
	mGames   *atomic.Int64
	mDone    *atomic.Int64
	mSeed    *atomic.Int64
	mStatics *atomic.Int64
	mMissing *atomic.Int64
	mHeld    *atomic.Int64
	mGround  *atomic.Bool
	mX       *status.Float
	mZ       *status.Float
	mYaw     *status.Float
	mStage   *status.Label
}

// NewSession builds the session around a sanitized base layout and starts
// the first game
func NewSession(base layout.Layout, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Board == nil {
		opts.Board = leaderboard.NewBoard(leaderboard.NewMemoryStore(), opts.Clock)
	}
	if opts.Audio == nil {
		opts.Audio = &audio.Nop{}
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyMap()
	}

	s := &Session{
		clock:       opts.Clock,
		seed:        opts.Seed,
		base:        base,
		shuffler:    shuffle.NewShuffler(&base),
		board:       opts.Board,
		audio:       opts.Audio,
		keys:        opts.Keys,
		held:        input.NewHeldKeys(),
		edges:       input.NewTracker(),
		ShowMinimap: true,
		metrics:     opts.Metrics,
	}

	body := physics.NewCapsule(player.DefaultSpawn[0], player.DefaultSpawn[1])
	s.world = physics.NewWorld(body)
	s.progress = progress.New(opts.Clock)
	s.controller = player.New(body, s.progress)

	m := opts.Metrics
	s.mFrames = m.Ints.Get(status.KeyFrames)
	s.mGames = m.Ints.Get(status.KeyNewGames)
	s.mDone = m.Ints.Get(status.KeyFinished)
	s.mSeed = m.Ints.Get(status.KeySeed)
	s.mStatics = m.Ints.Get(status.KeyColliders)
	s.mMissing = m.Ints.Get(status.KeyUnreached)
	s.mHeld = m.Ints.Get(status.KeyHeldKeys)
	s.mGround = m.Bools.Get(status.KeyGrounded)
	s.mX = m.Floats.Get(status.KeyPosX)
	s.mZ = m.Floats.Get(status.KeyPosZ)
	s.mYaw = m.Floats.Get(status.KeyYaw)
	s.mStage = m.Labels.Get(status.KeyStage)

	s.newGame()
	return s
}

// seedBase is the fixed seed, or the clock's milliseconds when unset
func (s *Session) seedBase() uint64 {
	if s.seed != 0 {
		return s.seed
	}
	return uint64(s.clock.Now().UnixMilli())
}

// NewGame reshuffles the layout from the base and restarts the errand. Every
// derived artifact is rebuilt before it returns, so the next frame sees a
// consistent world
func (s *Session) NewGame() {
	s.newGame()
	s.audio.Play(audio.CueNewGame)
}

func (s *Session) newGame() {
	s.counter++
	base := s.seedBase()

	l := s.base.Clone()
	s.shuffler.Apply(&l, s.counter, base)
	missing := geometry.CheckReachable(&l)
	for _, key := range missing {
		log.Printf("session: room %q has no door after shuffle", key)
	}
	s.layout = l
	s.scene = geometry.BuildScene(&s.layout)

	s.world.ResetStatics()
	for _, c := range s.scene.Colliders {
		s.world.AddStatic(c.Center, c.HalfExtents)
	}

	s.controller.SetLayout(&s.layout)
	s.controller.Reset()
	s.progress.Reset()
	s.progress.ResetTimer()
	s.result = leaderboard.Entry{}
	s.saved = false
	s.edges.Reset(s.held)

	s.mGames.Add(1)
	s.mSeed.Store(int64(base))
	s.mStatics.Store(int64(s.world.Statics()))
	s.mMissing.Store(int64(len(missing)))
	log.Printf("session: game %d, seed base %d, %d colliders", s.counter, base, s.world.Statics())
}

// ResetPlayer returns the walker to spawn without touching progress
func (s *Session) ResetPlayer() {
	s.controller.Reset()
	s.audio.Play(audio.CueReset)
}

// HandleKey applies one terminal key event. Held controls enter the held set;
// commands run immediately. Returns true on quit
func (s *Session) HandleKey(ctx context.Context, ev *tcell.EventKey) bool {
	a, run := s.keys.Resolve(ev)
	now := s.clock.Now()
	if run {
		s.held.Press(input.ActionRun, now)
	}
	if a.Held() {
		s.held.Press(a, now)
		return false
	}

	switch a {
	case input.ActionReset:
		s.ResetPlayer()
	case input.ActionNewGame:
		s.NewGame()
	case input.ActionClearBoard:
		s.board.Clear(ctx)
	case input.ActionToggleMinimap:
		s.ShowMinimap = !s.ShowMinimap
	case input.ActionToggleHeading:
		s.HeadingLocked = !s.HeadingLocked
	case input.ActionToggleDebug:
		s.ShowDebug = !s.ShowDebug
	case input.ActionToggleMute:
		s.audio.SetMuted(!s.audio.Muted())
	case input.ActionQuit:
		return true
	}
	return false
}

// Intent samples the held set as this frame's controls
func (s *Session) Intent() player.Intent {
	return player.Intent{
		Forward:     s.held.Down(input.ActionForward),
		Back:        s.held.Down(input.ActionBack),
		StrafeLeft:  s.held.Down(input.ActionStrafeLeft),
		StrafeRight: s.held.Down(input.ActionStrafeRight),
		TurnLeft:    s.held.Down(input.ActionTurnLeft),
		TurnRight:   s.held.Down(input.ActionTurnRight),
		Run:         s.held.Down(input.ActionRun),
		Interact:    s.edges.Pressed(input.ActionInteract),
	}
}

// Frame advances one frame of dt seconds: expire holds, drive, step physics,
// settle and record a finished run once
func (s *Session) Frame(ctx context.Context, dt float64) {
	dt = min(dt, MaxFrameDt)
	s.held.Expire(s.clock.Now())
	s.edges.Update(s.held)

	stage, changed := s.controller.Update(s.Intent(), dt, s.world.Step)
	if changed {
		s.onStage(stage)
	}

	if s.progress.Finished() && !s.saved {
		s.result = s.board.Add(ctx, s.progress.Elapsed.Milliseconds())
		s.saved = true
		s.mDone.Add(1)
		log.Printf("session: finished in %s", progress.Format(s.progress.Elapsed))
	}

	s.mFrames.Add(1)
	s.mHeld.Store(int64(s.held.Len()))
	s.mGround.Store(s.world.Body().Grounded())
	pos := s.controller.Position()
	s.mX.Set(pos.X)
	s.mZ.Set(pos.Z)
	s.mYaw.Set(s.controller.Yaw())
	s.mStage.Set(stage.String())
}

func (s *Session) onStage(stage progress.Stage) {
	switch stage {
	case progress.StageCheckedIn:
		s.audio.Play(audio.CueCheckIn)
		log.Printf("session: checked in, consult room %d", s.progress.TargetConsult)
	case progress.StageConsulted:
		s.audio.Play(audio.CueConsult)
	case progress.StageGotMeds:
		s.audio.Play(audio.CueMeds)
	}
}

// View assembles the render model for the current state
func (s *Session) View() render.Frame {
	pos := s.controller.Position()
	p := s.progress
	hud := render.HUDState{
		CheckedIn: p.CheckedIn,
		Consulted: p.Consulted,
		GotMeds:   p.GotMeds,
		Target:    p.TargetConsult,
		Running:   p.Running,
		Elapsed:   p.ElapsedNow(),
		Hint:      s.controller.Hint(),
		Muted:     s.audio.Muted(),
		LastID:    s.result.ID,
	}
	if p.Finished() {
		hud.Entries = s.board.Top(render.HUDTop)
	}
	target := ""
	if !p.Consulted {
		target = p.ConsultKey()
	}

	f := render.Frame{
		Layout:        &s.layout,
		Scene:         &s.scene,
		X:             pos.X,
		Z:             pos.Z,
		Yaw:           s.controller.Yaw(),
		TargetKey:     target,
		HUD:           hud,
		ShowMinimap:   s.ShowMinimap,
		HeadingLocked: s.HeadingLocked,
		ShowDebug:     s.ShowDebug,
	}
	if s.ShowDebug {
		f.Debug = s.metrics.Snapshot()
	}
	return f
}

func (s *Session) Layout() *layout.Layout { return &s.layout }

func (s *Session) Scene() *geometry.Scene { return &s.scene }

func (s *Session) Progress() *progress.Progress { return s.progress }

func (s *Session) Controller() *player.Controller { return s.controller }

func (s *Session) World() *physics.World { return s.world }

// Counter is the number of games started
func (s *Session) Counter() uint32 { return s.counter }

// Result is the entry recorded for the current game, zero until finished
func (s *Session) Result() leaderboard.Entry { return s.result }
