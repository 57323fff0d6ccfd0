// services/hal/service.go
package hal

import (
	"context"
	"sync"

	"pwmdemo-go/bus"
	"pwmdemo-go/errcode"
	"pwmdemo-go/types"
)

// Service owns the bus-facing control plane for PWM devices. Control
// messages on hal/pwm/<name>/control/set carry a types.PWMSet and are
// answered on the request's ReplyTo topic with an errcode string.
type Service struct {
	conn *bus.Connection

	mu   sync.Mutex
	pwms map[string]*PWMDevice
}

func NewService(conn *bus.Connection) *Service {
	return &Service{
		conn: conn,
		pwms: map[string]*PWMDevice{},
	}
}

// AddPWM registers a device for control dispatch.
func (s *Service) AddPWM(d *PWMDevice) {
	s.mu.Lock()
	s.pwms[d.Name()] = d
	s.mu.Unlock()
}

// Start launches the control loop.
func (s *Service) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Service) loop(ctx context.Context) {
	ctrlSub := s.conn.Subscribe(bus.Topic{"hal", "pwm", "+", "control", "set"})
	defer s.conn.Unsubscribe(ctrlSub)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ctrlSub.Channel():
			s.handleControl(msg)
		}
	}
}

// handleControl is strictly non-blocking.
func (s *Service) handleControl(msg *bus.Message) {
	// hal / pwm / <name> / control / set
	if len(msg.Topic) != 5 {
		s.conn.Reply(msg, string(errcode.InvalidParams), false)
		return
	}
	name := msg.Topic[2]

	s.mu.Lock()
	d, ok := s.pwms[name]
	s.mu.Unlock()
	if !ok {
		s.conn.Reply(msg, string(errcode.UnknownChannel), false)
		return
	}

	p, ok := msg.Payload.(types.PWMSet)
	if !ok {
		s.conn.Reply(msg, string(errcode.InvalidPayload), false)
		return
	}
	d.SetDuty(p.Level)
	s.conn.Reply(msg, string(errcode.OK), false)
}
