//go:build rp2040

// services/hal/platform/servo_rp2.go
package platform

import (
	"machine"

	"tinygo.org/x/drivers/servo"

	"pwmdemo-go/x/mathx"
)

// servoGroupBySlice returns the concrete machine PWM group so the servo
// driver sees the full PWM method set.
func servoGroupBySlice(slice uint8) servo.PWM {
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

// servoPWM drives an RC servo through the tinygo drivers servo package,
// which owns the 50 Hz carrier. Logical duty ticks are converted to pulse
// microseconds: 62500 ticks per 20 ms makes one tick 0.32 us, so the 1875
// and 7187 presets land on 600 us and 2.3 ms pulses.
type servoPWM struct {
	pin    int
	slice  uint8
	dev    servo.Servo
	period uint16
}

func (s *servoPWM) Configure(periodTicks, initialDuty uint16) error {
	dev, err := servo.New(servoGroupBySlice(s.slice), machine.Pin(s.pin))
	if err != nil {
		return err
	}
	s.dev = dev
	s.period = periodTicks
	s.SetDuty(initialDuty)
	return nil
}

func (s *servoPWM) SetDuty(dutyTicks uint16) {
	if s.period == 0 {
		return
	}
	duty := mathx.Min(dutyTicks, s.period)
	us := uint32(duty) * 20_000 / uint32(s.period)
	s.dev.SetMicroseconds(int16(us))
}
