// services/hal/pwm.go
package hal

import (
	"pwmdemo-go/bus"
	"pwmdemo-go/errcode"
	"pwmdemo-go/types"
	"pwmdemo-go/x/mathx"
)

// PWMDevice wraps one PWMChannel with clamping and bus telemetry. Every
// applied duty is published retained on hal/pwm/<name>/value so late
// subscribers see the current level.
type PWMDevice struct {
	name   string
	ch     PWMChannel
	conn   *bus.Connection
	period uint16
	topic  bus.Topic
}

func NewPWMDevice(name string, ch PWMChannel, conn *bus.Connection) *PWMDevice {
	return &PWMDevice{
		name:  name,
		ch:    ch,
		conn:  conn,
		topic: bus.Topic{"hal", "pwm", name, "value"},
	}
}

func (d *PWMDevice) Name() string { return d.name }

// Init configures the channel and applies the initial duty.
func (d *PWMDevice) Init(periodTicks, initialDuty uint16) error {
	if periodTicks == 0 {
		return errcode.InvalidParams
	}
	d.period = periodTicks
	initial := mathx.Min(initialDuty, periodTicks)
	if err := d.ch.Configure(periodTicks, initial); err != nil {
		return &errcode.E{C: errcode.PWMConfig, Op: "pwm_init", Err: err}
	}
	d.publish(initial)
	return nil
}

// SetDuty clamps to the period and writes the duty through. Writing the
// same value twice is a plain register rewrite with no cumulative effect.
func (d *PWMDevice) SetDuty(dutyTicks uint16) {
	duty := mathx.Min(dutyTicks, d.period)
	d.ch.SetDuty(duty)
	d.publish(duty)
}

func (d *PWMDevice) publish(duty uint16) {
	if d.conn == nil {
		return
	}
	d.conn.Publish(d.conn.NewMessage(d.topic, types.PWMValue{Level: duty}, true))
}
