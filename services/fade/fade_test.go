// services/fade/fade_test.go
package fade

import "testing"

type recordingOutput struct {
	writes []uint16
}

func (r *recordingOutput) SetDuty(d uint16) { r.writes = append(r.writes, d) }

func tickN(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

func TestTickActsOnlyEveryFifth(t *testing.T) {
	out := &recordingOutput{}
	c := New(out, DefaultConfig())

	tickN(c, 4)
	if len(out.writes) != 0 {
		t.Fatalf("duty pushed before the 5th tick: %v", out.writes)
	}
	if c.Duty() != 0 {
		t.Fatalf("duty mutated before the 5th tick: %d", c.Duty())
	}

	c.Tick()
	if len(out.writes) != 1 || out.writes[0] != 50 {
		t.Fatalf("writes after 5 ticks = %v, want [50]", out.writes)
	}

	tickN(c, 4)
	if len(out.writes) != 1 {
		t.Fatalf("extra pushes on non-qualifying ticks: %v", out.writes)
	}
	c.Tick()
	if len(out.writes) != 2 || out.writes[1] != 100 {
		t.Fatalf("writes after 10 ticks = %v", out.writes)
	}
}

func TestRisingSawtoothResetWithoutFlip(t *testing.T) {
	out := &recordingOutput{}
	c := New(out, DefaultConfig())

	// 1125 actions of +50 reach the 56250 ceiling exactly.
	last := uint16(0)
	for i := 0; i < 1124; i++ {
		tickN(c, 5)
		if c.Duty() != last+50 {
			t.Fatalf("action %d: duty = %d, want %d", i+1, c.Duty(), last+50)
		}
		last = c.Duty()
	}
	if last != 56200 {
		t.Fatalf("duty before reset = %d, want 56200", last)
	}

	tickN(c, 5)
	if c.Duty() != 0 {
		t.Fatalf("duty after ceiling = %d, want reset to 0", c.Duty())
	}
	if c.Dir() != Rising {
		t.Fatal("direction flipped on ceiling reset; must stay rising")
	}

	// The reset value itself is pushed.
	if out.writes[len(out.writes)-1] != 0 {
		t.Fatalf("last pushed duty = %d, want 0", out.writes[len(out.writes)-1])
	}

	// And the cycle restarts upward.
	tickN(c, 5)
	if c.Duty() != 50 || c.Dir() != Rising {
		t.Fatalf("after reset: duty=%d dir=%d", c.Duty(), c.Dir())
	}
}

func TestFallingHoldsAtZeroThenFlips(t *testing.T) {
	out := &recordingOutput{}
	c := New(out, DefaultConfig())
	c.duty = 150
	c.dir = Falling

	want := []uint16{100, 50, 0}
	for i, w := range want {
		tickN(c, 5)
		if c.Duty() != w {
			t.Fatalf("action %d: duty = %d, want %d", i+1, c.Duty(), w)
		}
		if c.Dir() != Falling {
			t.Fatalf("action %d: direction flipped early", i+1)
		}
	}

	// Next action: duty already 0, stays 0, direction flips to rising.
	tickN(c, 5)
	if c.Duty() != 0 {
		t.Fatalf("duty decremented below 0: %d", c.Duty())
	}
	if c.Dir() != Rising {
		t.Fatal("direction did not flip to rising at the floor")
	}

	// The held zero was still pushed to the output.
	if out.writes[len(out.writes)-1] != 0 {
		t.Fatalf("last pushed duty = %d, want 0", out.writes[len(out.writes)-1])
	}

	// Cycle restarts upward from 0.
	tickN(c, 5)
	if c.Duty() != 50 {
		t.Fatalf("restart duty = %d, want 50", c.Duty())
	}
}

func TestTickCounterWraps(t *testing.T) {
	out := &recordingOutput{}
	c := New(out, DefaultConfig())
	c.ticks = ^uint32(0) - 1 // two ticks before wrap

	tickN(c, 3)
	// Counter passed 2^32-1 -> 0 -> 1 without panicking; mod-5 gating keeps
	// working on the wrapped value.
	if c.ticks != 1 {
		t.Fatalf("ticks = %d, want wrapped 1", c.ticks)
	}
}

func TestConfigDefaults(t *testing.T) {
	c := New(&recordingOutput{}, Config{})
	if c.cfg.StepTicks != 50 || c.cfg.CeilingTicks != 56250 || c.cfg.ActEvery != 5 {
		t.Fatalf("defaults not applied: %+v", c.cfg)
	}
}
