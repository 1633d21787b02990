package clock

import (
	"math"
	"testing"
)

func TestTick(t *testing.T) {
	c := New()
	if c.Frame() != 0 {
		t.Fatalf("new clock at frame %d", c.Frame())
	}

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if c.Frame() != 5 {
		t.Errorf("frame = %d, want 5", c.Frame())
	}
}

func TestTickOverflowGuard(t *testing.T) {
	c := New()
	c.frames = math.MaxInt64

	c.Tick()
	if c.Frame() != 1 {
		t.Errorf("frame = %d after overflow guard, want 1", c.Frame())
	}
	if c.Frame() < 0 {
		t.Error("frame counter went negative")
	}
}

func TestDebugFlush(t *testing.T) {
	c := New()
	c.Debug("player x=10")
	c.Debug("solids=2")

	lines := c.FlushDebug()
	if len(lines) != 2 {
		t.Fatalf("flushed %d lines, want 2", len(lines))
	}
	if lines[0] != "player x=10" || lines[1] != "solids=2" {
		t.Errorf("unexpected lines %q", lines)
	}

	// Flush clears: the next read is empty until something is appended.
	if again := c.FlushDebug(); len(again) != 0 {
		t.Errorf("second flush returned %d lines", len(again))
	}

	c.Debug("next frame")
	if lines := c.FlushDebug(); len(lines) != 1 {
		t.Errorf("flush after re-append returned %d lines", len(lines))
	}
}
