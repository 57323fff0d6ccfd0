// services/fade/fade.go
package fade

// Output receives duty updates. *hal.PWMDevice satisfies it.
type Output interface {
	SetDuty(dutyTicks uint16)
}

type Direction uint8

const (
	Rising Direction = iota
	Falling
)

type Config struct {
	StepTicks    uint16 // duty change per action
	CeilingTicks uint16 // reset threshold while rising
	ActEvery     uint32 // act on every Nth tick
}

// DefaultConfig matches the LED fade of the lab board: +50 ticks every 5th
// 1 ms tick, reset at 90% of the 62500-tick period.
func DefaultConfig() Config {
	return Config{StepTicks: 50, CeilingTicks: 56250, ActEvery: 5}
}

// Controller advances an LED duty cycle on a periodic tick. Tick is meant to
// be called from the periodic timer callback: it never blocks and touches
// only its own fields plus the Output call. Single-writer; not safe for
// concurrent Tick calls.
type Controller struct {
	out Output
	cfg Config

	ticks uint32 // wraps on overflow, unguarded
	duty  uint16
	dir   Direction
}

func New(out Output, cfg Config) *Controller {
	if cfg.StepTicks == 0 {
		cfg.StepTicks = 50
	}
	if cfg.CeilingTicks == 0 {
		cfg.CeilingTicks = 56250
	}
	if cfg.ActEvery == 0 {
		cfg.ActEvery = 5
	}
	return &Controller{out: out, cfg: cfg}
}

// Tick is invoked once per periodic timer firing. It counts every
// invocation but only acts on every cfg.ActEvery-th one.
//
// While rising, reaching the ceiling resets the duty to zero without
// flipping direction, so the rising phase is a sawtooth. While falling, the
// duty holds at zero for one action before flipping back to rising. The
// asymmetry is the lab board's observed behaviour and is kept as is.
func (c *Controller) Tick() {
	c.ticks++
	if c.ticks%c.cfg.ActEvery != 0 {
		return
	}

	if c.dir == Rising {
		c.duty += c.cfg.StepTicks
		if c.duty >= c.cfg.CeilingTicks {
			c.duty = 0
		}
	} else {
		if c.duty > 0 {
			c.duty -= c.cfg.StepTicks
		} else {
			c.dir = Rising
		}
	}

	// Pushed on every action, changed or not.
	c.out.SetDuty(c.duty)
}

// Duty reports the current duty value in ticks.
func (c *Controller) Duty() uint16 { return c.duty }

// Dir reports the current fade direction.
func (c *Controller) Dir() Direction { return c.dir }
