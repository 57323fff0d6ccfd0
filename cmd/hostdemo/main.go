// cmd/hostdemo/main.go
//
// Host-side run of the demo against fake handles: the fade task, the
// button-to-servo mapping and the LED sequencer all execute for a few
// seconds with their output printed to stdout. Useful for eyeballing the
// control logic without a board attached.
package main

import (
	"context"
	"os"
	"time"

	"pwmdemo-go/bus"
	"pwmdemo-go/services/config"
	"pwmdemo-go/services/console"
	"pwmdemo-go/services/fade"
	"pwmdemo-go/services/hal"
	"pwmdemo-go/services/sequencer"
	"pwmdemo-go/services/servo"
	"pwmdemo-go/types"
)

// nullChannel discards duty writes; telemetry goes over the bus instead.
type nullChannel struct{}

func (nullChannel) Configure(periodTicks, initialDuty uint16) error { return nil }
func (nullChannel) SetDuty(dutyTicks uint16)                        {}

// simPin satisfies hal.IRQPin for the simulated button presses.
type simPin struct {
	level   bool
	handler func()
	n       int
}

func (p *simPin) ConfigureInput(_ hal.Pull) error   { return nil }
func (p *simPin) Get() bool                         { return p.level }
func (p *simPin) Number() int                       { return p.n }
func (p *simPin) SetIRQ(_ hal.Edge, h func()) error { p.handler = h; return nil }
func (p *simPin) ClearIRQ() error                   { p.handler = nil; return nil }
func (p *simPin) press() {
	p.level = true
	if p.handler != nil {
		p.handler()
	}
}
func (p *simPin) release() { p.level = false }

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 7*time.Second)
	defer cancel()

	b := bus.NewBus(32)
	cfg := config.Default()

	// Everything the board would print over UART1 goes to stdout here.
	console.New(os.Stdout).Start(ctx, b.NewConnection("console"))

	halConn := b.NewConnection("hal")
	fadeLED := hal.NewPWMDevice("fade_led", nullChannel{}, halConn)
	loopLED := hal.NewPWMDevice("loop_led", nullChannel{}, halConn)
	servoDev := hal.NewPWMDevice("servo", nullChannel{}, halConn)

	must(fadeLED.Init(cfg.FadeLED.Period, cfg.FadeLED.Initial))
	must(loopLED.Init(cfg.LoopLED.Period, cfg.LoopLED.Initial))
	must(servoDev.Init(cfg.Servo.Period, cfg.Servo.Initial))

	halSvc := hal.NewService(halConn)
	halSvc.AddPWM(servoDev)
	halSvc.Start(ctx)

	// Buttons: simulate BTN0..BTN3 presses once a second.
	mapper := servo.NewMapper(servoDev, cfg.Presets)
	buttons := hal.NewButtonSource(halConn, mapper.HandleMask, 16)
	pins := make([]*simPin, len(cfg.ButtonPins))
	for i, n := range cfg.ButtonPins {
		pins[i] = &simPin{n: n}
		must(buttons.AddLine(pins[i], uint8(i+2)))
	}
	buttons.Start(ctx)
	go func() {
		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
				p := pins[i%len(pins)]
				p.press()
				time.Sleep(50 * time.Millisecond)
				p.release()
			}
		}
	}()

	// 1 ms fade task on the first LED channel.
	fader := fade.New(fadeLED, fade.Config{
		StepTicks:    cfg.Fade.StepTicks,
		CeilingTicks: cfg.Fade.CeilingTicks,
		ActEvery:     cfg.Fade.ActEvery,
	})
	hal.NewPeriodicSource(time.Millisecond, fader.Tick).Start(ctx)

	// Poke the bus control plane once, like an external client would.
	go func() {
		time.Sleep(500 * time.Millisecond)
		rctx, rcancel := context.WithTimeout(ctx, time.Second)
		defer rcancel()
		ui := b.NewConnection("ui")
		req := ui.NewMessage(
			bus.Topic{"hal", "pwm", "servo", "control", "set"},
			types.PWMSet{Level: 3125},
			false,
		)
		if reply, err := ui.RequestWait(rctx, req); err != nil {
			println("control set error:", err.Error())
		} else if s, ok := reply.Payload.(string); ok {
			println("control set reply:", s)
		}
	}()

	// Foreground sequencer until the deadline.
	seq := sequencer.New(loopLED, hal.TimerDelay{}, cfg.Sequence)
	_ = seq.Run(ctx)
}

func must(err error) {
	if err != nil {
		println("Error:", err.Error())
		os.Exit(1)
	}
}
