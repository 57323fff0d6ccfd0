//go:build rp2040

// services/hal/platform/rp2.go
package platform

import (
	"machine"
	"sync"

	"pwmdemo-go/services/hal"
	"pwmdemo-go/x/mathx"
)

// -----------------------------------------------------------------------------
// GPIO
// -----------------------------------------------------------------------------

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) Number() int { return r.n }

func (r *rp2Pin) ConfigureInput(pull hal.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) Get() bool { return r.p.Get() }

// IRQ support. The RP2 port provides SetInterrupt with PinChange flags.
func (r *rp2Pin) SetIRQ(edge hal.Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e hal.Edge) machine.PinChange {
	switch e {
	case hal.EdgeRising:
		return machine.PinRising
	case hal.EdgeFalling:
		return machine.PinFalling
	case hal.EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}

// -----------------------------------------------------------------------------
// PWM
// -----------------------------------------------------------------------------

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// rp2PWM drives one channel of an RP2 PWM slice at the demo's 50 Hz and
// maps logical duty ticks [0..period] onto the hardware counter range.
type rp2PWM struct {
	mu     sync.Mutex
	pin    int
	ctrl   pwmCtrl
	chIdx  uint8
	period uint16 // logical ticks per cycle
	hwTop  uint32 // controller.Top() after Configure
}

const pwmPeriodNs = 20_000_000 // 50 Hz servo/LED carrier

func (p *rp2PWM) Configure(periodTicks, initialDuty uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Channels sharing a slice reconfigure it with the same 50 Hz period,
	// so the repeat Configure during init is harmless.
	if err := p.ctrl.Configure(machine.PWMConfig{Period: pwmPeriodNs}); err != nil {
		return err
	}
	ch, err := p.ctrl.Channel(machine.Pin(p.pin))
	if err != nil {
		return err
	}
	p.chIdx = ch
	p.period = periodTicks
	p.hwTop = p.ctrl.Top()
	p.setHW(initialDuty)
	return nil
}

func (p *rp2PWM) SetDuty(dutyTicks uint16) {
	p.mu.Lock()
	p.setHW(dutyTicks)
	p.mu.Unlock()
}

// caller holds lock
func (p *rp2PWM) setHW(logical uint16) {
	if p.period == 0 || p.hwTop == 0 {
		return
	}
	logical = mathx.Min(logical, p.period)
	hw := (uint32(logical) * p.hwTop) / uint32(p.period)
	p.ctrl.Set(p.chIdx, hw)
}

// -----------------------------------------------------------------------------
// Factory
// -----------------------------------------------------------------------------

// Factory hands out RP2-backed handles. Pins listed in servoPins get a
// servo-driver channel instead of a plain slice channel.
type Factory struct {
	mu        sync.Mutex
	pinCache  map[int]*rp2Pin
	servoPins map[int]bool
}

func NewFactory(servoPins ...int) *Factory {
	sp := make(map[int]bool, len(servoPins))
	for _, n := range servoPins {
		sp[n] = true
	}
	return &Factory{
		pinCache:  make(map[int]*rp2Pin),
		servoPins: sp,
	}
}

func (f *Factory) ByNumber(n int) (hal.IRQPin, bool) {
	if n < 0 || n > 28 {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.pinCache[n]; ok {
		return p, true
	}
	p := &rp2Pin{p: machine.Pin(n), n: n}
	f.pinCache[n] = p
	return p, true
}

func (f *Factory) ByPin(n int) (hal.PWMChannel, bool) {
	if n < 0 || n > 28 {
		return nil, false
	}
	slice := uint8((n >> 1) & 7)
	if f.servoPins[n] {
		return &servoPWM{pin: n, slice: slice}, true
	}
	return &rp2PWM{pin: n, ctrl: pwmGroupBySlice(slice)}, true
}
