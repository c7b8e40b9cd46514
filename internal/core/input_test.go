package core

import (
	"testing"
	"time"
)

func TestKeyPress(t *testing.T) {
	p := KeyPress(ActionRotate)
	if !p.Ok || p.Action != ActionRotate {
		t.Errorf("KeyPress(Rotate) = %+v", p)
	}

	if p := KeyPress(ActionNone); p.Ok {
		t.Errorf("KeyPress(None) should normalize to NoKey, got %+v", p)
	}

	if p := NoKey(); p.Ok || p.Action != ActionNone {
		t.Errorf("NoKey() = %+v", p)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:   "Left",
		ActionRotate: "Rotate",
		ActionQuit:   "Quit",
		Action(99):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(750 * time.Millisecond)
	if got := c.Now().Sub(start); got != 750*time.Millisecond {
		t.Errorf("after Advance, elapsed = %v, expected 750ms", got)
	}
}

func TestNewRandomDeterministic(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(7), b.Intn(7); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
