//go:build rp2040

// cmd/pwmdemo/main.go
package main

import (
	"context"
	"time"

	"pwmdemo-go/bus"
	"pwmdemo-go/services/config"
	"pwmdemo-go/services/console"
	"pwmdemo-go/services/fade"
	"pwmdemo-go/services/hal"
	"pwmdemo-go/services/hal/platform"
	"pwmdemo-go/services/sequencer"
	"pwmdemo-go/services/servo"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("Info: pwmdemo boot")

	ctx := context.Background()
	b := bus.NewBus(8)

	// Configuration first so every service finds it retained.
	cfgSvc := config.NewService(config.Default())
	cfgSvc.Start(ctx, b.NewConnection("config"))

	loadCtx, loadCancel := context.WithTimeout(ctx, time.Second)
	cfg := config.Load(loadCtx, b.NewConnection("main"))
	loadCancel()

	// Diagnostics console on UART1.
	if uart, err := platform.DebugUART(115200); err != nil {
		println("Error: uart1 configure:", err.Error())
	} else {
		console.New(uart).Start(ctx, b.NewConnection("console"))
	}

	// Hardware handles.
	factory := platform.NewFactory(cfg.Servo.Pin)
	reg := hal.NewRegistry(factory, factory)
	halConn := b.NewConnection("hal")

	fadeCh, err := reg.ClaimPWM("fade_led", cfg.FadeLED.Pin)
	if err != nil {
		fatal("claim fade_led", err)
	}
	loopCh, err := reg.ClaimPWM("loop_led", cfg.LoopLED.Pin)
	if err != nil {
		fatal("claim loop_led", err)
	}
	servoCh, err := reg.ClaimPWM("servo", cfg.Servo.Pin)
	if err != nil {
		fatal("claim servo", err)
	}

	fadeLED := hal.NewPWMDevice("fade_led", fadeCh, halConn)
	loopLED := hal.NewPWMDevice("loop_led", loopCh, halConn)
	servoDev := hal.NewPWMDevice("servo", servoCh, halConn)

	if err := fadeLED.Init(cfg.FadeLED.Period, cfg.FadeLED.Initial); err != nil {
		fatal("init fade_led", err)
	}
	if err := loopLED.Init(cfg.LoopLED.Period, cfg.LoopLED.Initial); err != nil {
		fatal("init loop_led", err)
	}
	if err := servoDev.Init(cfg.Servo.Period, cfg.Servo.Initial); err != nil {
		fatal("init servo", err)
	}

	// Bus control plane for the PWM devices.
	halSvc := hal.NewService(halConn)
	halSvc.AddPWM(fadeLED)
	halSvc.AddPWM(loopLED)
	halSvc.AddPWM(servoDev)
	halSvc.Start(ctx)

	// Buttons drive the servo presets.
	mapper := servo.NewMapper(servoDev, cfg.Presets)
	buttons := hal.NewButtonSource(halConn, mapper.HandleMask, 16)
	for i, pinN := range cfg.ButtonPins {
		pin, err := reg.ClaimPin("buttons", pinN)
		if err != nil {
			fatal("claim button pin", err)
		}
		if err := buttons.AddLine(pin, uint8(i+2)); err != nil {
			fatal("button irq", err)
		}
	}
	buttons.Start(ctx)

	// 1 ms periodic task fades the LED.
	fader := fade.New(fadeLED, fade.Config{
		StepTicks:    cfg.Fade.StepTicks,
		CeilingTicks: cfg.Fade.CeilingTicks,
		ActEvery:     cfg.Fade.ActEvery,
	})
	hal.NewPeriodicSource(time.Millisecond, fader.Tick).Start(ctx)

	// Foreground loop: cycle the second LED channel forever.
	println("Info: pwmdemo running")
	seq := sequencer.New(loopLED, hal.TimerDelay{}, cfg.Sequence)
	if err := seq.Run(ctx); err != nil {
		println("Error: sequencer:", err.Error())
	}
}

func fatal(op string, err error) {
	println("Error:", op+":", err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
