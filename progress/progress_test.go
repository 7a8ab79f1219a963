package progress_test

import (
	"testing"
	"time"

	"github.com/lixenwraith/clinic-walk/engine"
	"github.com/lixenwraith/clinic-walk/progress"
)

var epoch = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func TestTimerAccounting(t *testing.T) {
	clock := engine.NewMockTimeProvider(epoch)
	p := progress.New(clock)

	p.Start()
	clock.Advance(500 * time.Millisecond)
	p.Stop()
	if p.Elapsed != 500*time.Millisecond {
		t.Fatalf("elapsed = %v, want 500ms", p.Elapsed)
	}

	clock.Advance(time.Second)
	p.Stop()
	if p.Elapsed != 500*time.Millisecond {
		t.Errorf("second stop changed elapsed to %v", p.Elapsed)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	clock := engine.NewMockTimeProvider(epoch)
	p := progress.New(clock)

	p.Start()
	clock.Advance(200 * time.Millisecond)
	p.Start()
	clock.Advance(300 * time.Millisecond)
	p.Stop()
	if p.Elapsed != 500*time.Millisecond {
		t.Errorf("elapsed = %v, restart moved the start timestamp", p.Elapsed)
	}
}

func TestElapsedAccumulatesAcrossRuns(t *testing.T) {
	clock := engine.NewMockTimeProvider(epoch)
	p := progress.New(clock)

	p.Start()
	clock.Advance(time.Second)
	p.Stop()
	clock.Advance(time.Minute)
	p.Start()
	clock.Advance(250 * time.Millisecond)

	if got := p.ElapsedNow(); got != 1250*time.Millisecond {
		t.Errorf("running elapsed = %v, want 1.25s", got)
	}
	if p.Elapsed != time.Second {
		t.Errorf("display read changed stored total to %v", p.Elapsed)
	}
}

func TestResetTimer(t *testing.T) {
	clock := engine.NewMockTimeProvider(epoch)
	p := progress.New(clock)
	p.Start()
	clock.Advance(time.Second)
	p.ResetTimer()

	if p.Running || p.Elapsed != 0 || !p.StartAt.IsZero() {
		t.Errorf("reset timer left %+v", p)
	}
	if p.ElapsedNow() != 0 {
		t.Error("elapsed after reset not zero")
	}
}

func TestCheckpointsAreOrderedAndMonotonic(t *testing.T) {
	clock := engine.NewMockTimeProvider(epoch)
	p := progress.New(clock)

	if p.Consult() || p.CollectMeds() {
		t.Fatal("checkpoint skipped ahead of check-in")
	}
	if !p.CheckIn() {
		t.Fatal("check-in refused")
	}
	if !p.Running {
		t.Error("check-in did not start the timer")
	}
	if p.TargetConsult < 1 || p.TargetConsult > progress.ConsultRooms {
		t.Errorf("target %d outside 1..%d", p.TargetConsult, progress.ConsultRooms)
	}
	target := p.TargetConsult

	if p.CheckIn() {
		t.Error("second check-in reported a change")
	}
	if p.TargetConsult != target {
		t.Error("target changed before reset")
	}

	p.Consult()
	clock.Advance(90 * time.Second)
	p.CollectMeds()

	if p.Stage() != progress.StageGotMeds || !p.Finished() {
		t.Fatalf("stage = %v, finished = %v", p.Stage(), p.Finished())
	}
	if p.Elapsed != 90*time.Second {
		t.Errorf("elapsed = %v, want 90s", p.Elapsed)
	}

	for i := 0; i < 3; i++ {
		p.CheckIn()
		p.Consult()
		p.CollectMeds()
		if !p.CheckedIn || !p.Consulted || !p.GotMeds {
			t.Fatal("a checkpoint was cleared without reset")
		}
	}

	p.Reset()
	if p.Stage() != progress.StageNotCheckedIn || p.TargetConsult != 0 {
		t.Errorf("reset left stage %v target %d", p.Stage(), p.TargetConsult)
	}
}

func TestAssignConsultTargetRange(t *testing.T) {
	p := progress.New(engine.NewMockTimeProvider(epoch))
	seen := make(map[int]bool)
	for i := 0; i < 400; i++ {
		n := p.AssignConsultTarget()
		if n < 1 || n > progress.ConsultRooms {
			t.Fatalf("target %d out of range", n)
		}
		seen[n] = true
	}
	if len(seen) != progress.ConsultRooms {
		t.Errorf("only saw targets %v", seen)
	}
	if key := p.ConsultKey(); len(key) != len("consult1") {
		t.Errorf("consult key %q", key)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00.00"},
		{500 * time.Millisecond, "00:00.50"},
		{61*time.Second + 234*time.Millisecond, "01:01.23"},
		{10*time.Minute + 9*time.Millisecond, "10:00.00"},
		{-time.Second, "00:00.00"},
	}
	for _, tt := range tests {
		if got := progress.Format(tt.d); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
