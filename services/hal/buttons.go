// services/hal/buttons.go
package hal

import (
	"context"
	"sync"
	"sync/atomic"

	"pwmdemo-go/bus"
	"pwmdemo-go/types"
)

// ButtonSource watches up to eight input lines for rising edges and reports
// an 8-bit status mask to a registered handler. The ISR path only posts to
// a buffered channel; mask assembly and the handler run on a worker
// goroutine. The status mask has one bit per line currently held high, so
// simultaneous presses show up as combined masks.
type ButtonSource struct {
	// Written by ISR; MUST NOT block the ISR:
	isrQ chan struct{}

	handler func(mask uint8)
	conn    *bus.Connection

	mu    sync.Mutex
	lines []buttonLine

	drops uint32 // ISR drop counter
}

type buttonLine struct {
	pin IRQPin
	bit uint8
}

// NewButtonSource registers handler to receive status masks. handler runs on
// the worker goroutine and must not block for long.
func NewButtonSource(conn *bus.Connection, handler func(mask uint8), isrBuf int) *ButtonSource {
	if isrBuf <= 0 {
		isrBuf = 16
	}
	return &ButtonSource{
		isrQ:    make(chan struct{}, isrBuf),
		handler: handler,
		conn:    conn,
	}
}

// AddLine configures pin as a pulled-down input firing on rising edges and
// assigns it the given mask bit.
func (s *ButtonSource) AddLine(pin IRQPin, bit uint8) error {
	if err := pin.ConfigureInput(PullDown); err != nil {
		return err
	}
	isr := func() {
		select {
		case s.isrQ <- struct{}{}:
		default:
			atomic.AddUint32(&s.drops, 1) // protect ISR path
		}
	}
	if err := pin.SetIRQ(EdgeRising, isr); err != nil {
		return err
	}
	s.mu.Lock()
	s.lines = append(s.lines, buttonLine{pin: pin, bit: bit})
	s.mu.Unlock()
	return nil
}

// Start launches the worker goroutine.
func (s *ButtonSource) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				s.clearIRQs()
				return
			case <-s.isrQ:
				s.report()
			}
		}
	}()
}

// report samples all lines into a status mask and hands it out.
func (s *ButtonSource) report() {
	mask := s.readMask()
	if mask == 0 {
		// Line already released by the time the worker ran.
		return
	}
	if s.handler != nil {
		s.handler(mask)
	}
	if s.conn != nil {
		s.conn.Publish(s.conn.NewMessage(
			bus.Topic{"hal", "button", "event"},
			types.ButtonEvent{Mask: mask},
			false,
		))
	}
}

func (s *ButtonSource) readMask() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var mask uint8
	for _, l := range s.lines {
		if l.pin.Get() {
			mask |= 1 << l.bit
		}
	}
	return mask
}

func (s *ButtonSource) clearIRQs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		_ = l.pin.ClearIRQ()
	}
}

// ISRDrops reports how many edges were discarded because the ISR queue was
// full.
func (s *ButtonSource) ISRDrops() uint32 { return atomic.LoadUint32(&s.drops) }
