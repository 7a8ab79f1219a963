package status

import (
	"strings"
	"sync"
	"testing"
)

func TestTableGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyFrames)
	b := r.Ints.Get(KeyFrames)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("shared counter = %d, want 3", got)
	}
	if !r.Ints.Has(KeyFrames) || r.Ints.Has(KeyFPS) {
		t.Error("Has reports wrong membership")
	}
}

func TestFloatAddConcurrent(t *testing.T) {
	var f Float
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 4000 {
		t.Errorf("sum = %v, want 4000", got)
	}
}

func TestLabelTruncates(t *testing.T) {
	var l Label
	if l.Get() != "" {
		t.Error("zero label not empty")
	}
	l.Set(strings.Repeat("x", MaxLabelLen+10))
	if got := len(l.Get()); got != MaxLabelLen {
		t.Errorf("label length = %d, want %d", got, MaxLabelLen)
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Labels.Get(KeyStage).Set("consulted")
	r.Floats.Get(KeyPosX).Set(1.25)
	r.Bools.Get(KeyGrounded).Store(true)
	r.Ints.Get(KeyFrames).Store(42)

	lines := r.Snapshot()
	want := []Line{
		{KeyFrames, "42"},
		{KeyGrounded, "true"},
		{KeyPosX, "1.25"},
		{KeyStage, "consulted"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}
