// Package progress tracks the errand checkpoints and the run stopwatch.
package progress

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Clock is the time source the stopwatch samples at start and stop boundaries
type Clock interface {
	Now() time.Time
}

// ConsultRooms is the number of consultation rooms a target is drawn from
const ConsultRooms = 4

// Stage is the position in the one-way checkpoint sequence
type Stage uint8

const (
	StageNotCheckedIn Stage = iota
	StageCheckedIn
	StageConsulted
	StageGotMeds
)

func (s Stage) String() string {
	switch s {
	case StageCheckedIn:
		return "checked-in"
	case StageConsulted:
		return "consulted"
	case StageGotMeds:
		return "got-meds"
	}
	return "not-checked-in"
}

// Progress holds checkpoint flags and stopwatch state for one game.
// Flags only move forward until Reset. Elapsed is the total folded in at stop
type Progress struct {
	CheckedIn bool
	Consulted bool
	GotMeds   bool

	// TargetConsult is 1..ConsultRooms once assigned, 0 before check-in
	TargetConsult int

	Running bool
	StartAt time.Time
	Elapsed time.Duration

	clock Clock
	intN  func(n int) int
}

// New creates a progress tracker sampling clock
func New(clock Clock) *Progress {
	return &Progress{clock: clock, intN: rand.IntN}
}

// Stage derives the current checkpoint
func (p *Progress) Stage() Stage {
	switch {
	case p.GotMeds:
		return StageGotMeds
	case p.Consulted:
		return StageConsulted
	case p.CheckedIn:
		return StageCheckedIn
	}
	return StageNotCheckedIn
}

// CheckIn sets the first checkpoint, assigns a consult target and starts the
// stopwatch. Returns false when already checked in
func (p *Progress) CheckIn() bool {
	if p.CheckedIn {
		return false
	}
	p.CheckedIn = true
	if p.TargetConsult == 0 {
		p.AssignConsultTarget()
	}
	p.Start()
	return true
}

// Consult sets the second checkpoint. Requires check-in
func (p *Progress) Consult() bool {
	if !p.CheckedIn || p.Consulted {
		return false
	}
	p.Consulted = true
	return true
}

// CollectMeds sets the final checkpoint and stops the stopwatch. Requires a consult
func (p *Progress) CollectMeds() bool {
	if !p.Consulted || p.GotMeds {
		return false
	}
	p.GotMeds = true
	p.Stop()
	return true
}

// Finished reports a completed errand with the stopwatch halted
func (p *Progress) Finished() bool {
	return p.CheckedIn && p.Consulted && p.GotMeds && !p.Running
}

// Start records the start timestamp. No-op while running
func (p *Progress) Start() {
	if p.Running {
		return
	}
	p.Running = true
	p.StartAt = p.clock.Now()
}

// Stop folds the running delta into Elapsed. No-op while stopped
func (p *Progress) Stop() {
	if !p.Running {
		return
	}
	p.Elapsed += p.clock.Now().Sub(p.StartAt)
	p.Running = false
	p.StartAt = time.Time{}
}

// Reset clears every checkpoint and the consult target
func (p *Progress) Reset() {
	p.CheckedIn, p.Consulted, p.GotMeds = false, false, false
	p.TargetConsult = 0
}

// ResetTimer zeroes the stopwatch and stops it
func (p *Progress) ResetTimer() {
	p.Running = false
	p.StartAt = time.Time{}
	p.Elapsed = 0
}

// ElapsedAt is the display value at now: Elapsed plus the running delta.
// It never changes the stored total
func (p *Progress) ElapsedAt(now time.Time) time.Duration {
	if p.Running && !p.StartAt.IsZero() {
		return p.Elapsed + now.Sub(p.StartAt)
	}
	return p.Elapsed
}

// ElapsedNow samples ElapsedAt with the tracker's clock
func (p *Progress) ElapsedNow() time.Duration {
	return p.ElapsedAt(p.clock.Now())
}

// AssignConsultTarget draws a consult room number uniformly from 1..ConsultRooms
func (p *Progress) AssignConsultTarget() int {
	p.TargetConsult = 1 + p.intN(ConsultRooms)
	return p.TargetConsult
}

// ConsultKey is the room key of the assigned target, empty when unassigned
func (p *Progress) ConsultKey() string {
	if p.TargetConsult == 0 {
		return ""
	}
	return fmt.Sprintf("consult%d", p.TargetConsult)
}

// Format renders a duration as mm:ss.cc; negative durations render as zero
func Format(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	s := ms / 1000
	return fmt.Sprintf("%02d:%02d.%02d", s/60, s%60, (ms%1000)/10)
}
