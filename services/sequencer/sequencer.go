// services/sequencer/sequencer.go
package sequencer

import (
	"context"

	"pwmdemo-go/services/hal"
	"pwmdemo-go/types"
)

// Output receives duty updates. *hal.PWMDevice satisfies it.
type Output interface {
	SetDuty(dutyTicks uint16)
}

// DefaultSteps cycles the LED channel through 5%, 30% and 95% of the
// 62500-tick period, each held for 2 seconds.
func DefaultSteps() []types.SequenceStep {
	return []types.SequenceStep{
		{Duty: 3125, HoldMs: 2000},
		{Duty: 18750, HoldMs: 2000},
		{Duty: 59375, HoldMs: 2000},
	}
}

// Sequencer is the demo's foreground loop: it cycles one PWM channel
// through a fixed list of duty steps forever, blocking through the delay
// service between steps. Nothing but ctx cancellation can pause or stop it.
type Sequencer struct {
	out   Output
	delay hal.Delay
	steps []types.SequenceStep
}

func New(out Output, delay hal.Delay, steps []types.SequenceStep) *Sequencer {
	return &Sequencer{out: out, delay: delay, steps: steps}
}

// Run loops until ctx is cancelled. The duty is applied before each hold,
// so the first step's level is visible from time zero.
func (s *Sequencer) Run(ctx context.Context) error {
	if len(s.steps) == 0 {
		return nil
	}
	for {
		for _, st := range s.steps {
			s.out.SetDuty(st.Duty)
			if err := s.delay.DelayMs(ctx, st.HoldMs); err != nil {
				return err
			}
		}
	}
}
