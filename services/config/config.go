// services/config/config.go
package config

import (
	"context"

	"pwmdemo-go/bus"
	"pwmdemo-go/types"
)

const serviceName = "config"

// topicDemo is where the demo configuration lives, retained.
var topicDemo = bus.Topic{"config", "demo"}

// Default is the demo board wiring: fading LED on GP14 (slice 7 channel A),
// sequenced LED on GP15 (slice 7 channel B), servo on GP16, PMOD BTN lines
// on GP2..GP5 (mask bits 2..5). All channels run the 62500-tick, 20 ms
// period; the sequenced LED starts at 5% duty, the servo at its BTN0
// position.
func Default() types.DemoConfig {
	return types.DemoConfig{
		FadeLED:    types.PWMChannelConfig{Pin: 14, Period: 62500, Initial: 0},
		LoopLED:    types.PWMChannelConfig{Pin: 15, Period: 62500, Initial: 3125},
		Servo:      types.PWMChannelConfig{Pin: 16, Period: 62500, Initial: 1875},
		ButtonPins: []int{2, 3, 4, 5},
		Fade:       types.FadeConfig{StepTicks: 50, CeilingTicks: 56250, ActEvery: 5},
		Presets: []types.ServoPreset{
			{Mask: 0x04, Duty: 1875},
			{Mask: 0x08, Duty: 3125},
			{Mask: 0x10, Duty: 5000},
			{Mask: 0x20, Duty: 7187},
		},
		Sequence: []types.SequenceStep{
			{Duty: 3125, HoldMs: 2000},
			{Duty: 18750, HoldMs: 2000},
			{Duty: 59375, HoldMs: 2000},
		},
	}
}

// Service publishes the embedded configuration as retained messages so
// every service can pick it up regardless of start order.
type Service struct {
	Name string
	cfg  types.DemoConfig
}

func NewService(cfg types.DemoConfig) *Service {
	return &Service{Name: serviceName, cfg: cfg}
}

func (s *Service) publish(conn *bus.Connection) {
	conn.Publish(conn.NewMessage(topicDemo, s.cfg, true))
}

// Start publishes the config in a goroutine.
func (s *Service) Start(_ context.Context, conn *bus.Connection) {
	go s.publish(conn)
}

// Load blocks until a retained demo config is visible on the bus, or ctx
// expires, in which case the embedded default is returned.
func Load(ctx context.Context, conn *bus.Connection) types.DemoConfig {
	sub := conn.Subscribe(topicDemo)
	defer conn.Unsubscribe(sub)

	select {
	case msg := <-sub.Channel():
		if cfg, ok := msg.Payload.(types.DemoConfig); ok {
			return cfg
		}
	case <-ctx.Done():
	}
	return Default()
}
