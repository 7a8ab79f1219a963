package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/clinic-walk/layout"
)

func TestShuffledIsDeterministic(t *testing.T) {
	base, _ := layout.Default()
	a := shuffled(&base, 3, 99)
	b := shuffled(&base, 3, 99)
	for i := range a.Rooms {
		if a.Rooms[i].X != b.Rooms[i].X || a.Rooms[i].Z != b.Rooms[i].Z {
			t.Fatalf("room %s placed differently", a.Rooms[i].Key)
		}
	}
}

func TestPrintMapDimensions(t *testing.T) {
	base, _ := layout.Default()
	l := shuffled(&base, 1, 1)
	var out bytes.Buffer
	printMap(&out, &l, 60, 20, false)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 60 {
			t.Errorf("line %d has %d cells", i, n)
		}
	}
	if !strings.ContainsAny(out.String(), "▲▼◀▶") {
		t.Error("spawn marker missing")
	}
}

func TestPrintRoomsListsEveryRoom(t *testing.T) {
	base, _ := layout.Default()
	var out bytes.Buffer
	printRooms(&out, &base)
	for _, r := range base.Rooms {
		if !strings.Contains(out.String(), r.Key) {
			t.Errorf("room %s missing", r.Key)
		}
	}
}
