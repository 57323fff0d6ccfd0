// services/hal/types.go
package hal

import (
	"context"
)

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	Get() bool
	Number() int
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

// IRQPin extends GPIOPin with interrupts.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// PinFactory supplies GPIO pins by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (IRQPin, bool)
}

// ---- PWM abstractions ----

// PWMChannel is one hardware duty-cycle generator. Duty is expressed in
// raw ticks out of the configured period. Out-of-range duty behaviour is
// left to the provider; the device layer clamps before calling.
type PWMChannel interface {
	Configure(periodTicks, initialDuty uint16) error
	SetDuty(dutyTicks uint16)
}

// PWMFactory supplies PWM channels by output pin number.
type PWMFactory interface {
	ByPin(n int) (PWMChannel, bool)
}

// ---- Delay ----

// Delay provides a blocking millisecond delay, cancellable via ctx.
type Delay interface {
	DelayMs(ctx context.Context, ms uint32) error
}
