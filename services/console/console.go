// services/console/console.go
package console

import (
	"context"
	"io"

	"pwmdemo-go/bus"
	"pwmdemo-go/types"
	"pwmdemo-go/x/conv"
)

// Service taps hal/# and writes compact event lines to a sink (UART on the
// board, any io.Writer on the host). Formatting is allocation-light and
// avoids fmt so the MCU build stays small.
type Service struct {
	w io.Writer
}

func New(w io.Writer) *Service {
	return &Service{w: w}
}

// Start launches the monitor loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.loop(ctx, conn)
}

func (s *Service) loop(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(bus.Topic{"hal", "#"})
	defer conn.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-sub.Channel():
			s.printEvent(msg)
		}
	}
}

func (s *Service) printEvent(msg *bus.Message) {
	var line [64]byte
	buf := line[:0]

	for i, tok := range msg.Topic {
		if i > 0 {
			buf = append(buf, '/')
		}
		buf = append(buf, tok...)
	}

	var num [8]byte
	switch p := msg.Payload.(type) {
	case types.PWMValue:
		buf = append(buf, " level="...)
		buf = append(buf, conv.Utoa(num[:], uint64(p.Level))...)
	case types.ButtonEvent:
		buf = append(buf, " mask=0x"...)
		buf = append(buf, conv.U8Hex(num[:2], p.Mask)...)
	default:
		buf = append(buf, " ?"...)
	}
	buf = append(buf, '\r', '\n')

	_, _ = s.w.Write(buf)
}
