// services/hal/pwm_test.go
package hal

import (
	"sync"
	"testing"
	"time"

	"pwmdemo-go/bus"
	"pwmdemo-go/errcode"
	"pwmdemo-go/types"
)

// fakePWMChannel records configuration and every duty write. Safe for use
// from worker goroutines.
type fakePWMChannel struct {
	mu      sync.Mutex
	period  uint16
	initial uint16
	writes  []uint16
	cfgErr  error
}

func (f *fakePWMChannel) Configure(periodTicks, initialDuty uint16) error {
	if f.cfgErr != nil {
		return f.cfgErr
	}
	f.mu.Lock()
	f.period = periodTicks
	f.initial = initialDuty
	f.mu.Unlock()
	return nil
}

func (f *fakePWMChannel) SetDuty(dutyTicks uint16) {
	f.mu.Lock()
	f.writes = append(f.writes, dutyTicks)
	f.mu.Unlock()
}

// snapshot copies the recorded duty writes.
func (f *fakePWMChannel) snapshot() []uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uint16(nil), f.writes...)
}

func TestPWMDeviceInitAndSet(t *testing.T) {
	ch := &fakePWMChannel{}
	d := NewPWMDevice("led", ch, nil)

	if err := d.Init(62500, 3125); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if ch.period != 62500 || ch.initial != 3125 {
		t.Fatalf("configured %d/%d", ch.period, ch.initial)
	}

	d.SetDuty(18750)
	d.SetDuty(59375)
	if len(ch.writes) != 2 || ch.writes[0] != 18750 || ch.writes[1] != 59375 {
		t.Fatalf("writes = %v", ch.writes)
	}
}

func TestPWMDeviceClampsToPeriod(t *testing.T) {
	ch := &fakePWMChannel{}
	d := NewPWMDevice("led", ch, nil)
	if err := d.Init(62500, 65000); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if ch.initial != 62500 {
		t.Fatalf("initial = %d, want clamped 62500", ch.initial)
	}

	d.SetDuty(65000)
	if ch.writes[0] != 62500 {
		t.Fatalf("write = %d, want clamped 62500", ch.writes[0])
	}
}

func TestPWMDeviceInitErrors(t *testing.T) {
	d := NewPWMDevice("led", &fakePWMChannel{}, nil)
	if err := d.Init(0, 0); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("zero period: got %v", err)
	}

	bad := &fakePWMChannel{cfgErr: errcode.Error}
	d = NewPWMDevice("led", bad, nil)
	if err := d.Init(62500, 0); errcode.Of(err) != errcode.PWMConfig {
		t.Fatalf("config failure: got %v", err)
	}
}

func TestPWMDeviceSetIdempotent(t *testing.T) {
	ch := &fakePWMChannel{}
	d := NewPWMDevice("servo", ch, nil)
	if err := d.Init(62500, 1875); err != nil {
		t.Fatalf("Init: %v", err)
	}

	d.SetDuty(5000)
	d.SetDuty(5000)
	if len(ch.writes) != 2 || ch.writes[0] != 5000 || ch.writes[1] != 5000 {
		t.Fatalf("writes = %v", ch.writes)
	}
}

func TestPWMDevicePublishesRetainedValue(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("hal")

	ch := &fakePWMChannel{}
	d := NewPWMDevice("led", ch, conn)
	if err := d.Init(62500, 3125); err != nil {
		t.Fatalf("Init: %v", err)
	}
	d.SetDuty(18750)

	// Late subscriber sees the current (retained) level.
	mon := b.NewConnection("mon")
	sub := mon.Subscribe(bus.Topic{"hal", "pwm", "led", "value"})
	select {
	case msg := <-sub.Channel():
		v, ok := msg.Payload.(types.PWMValue)
		if !ok || v.Level != 18750 {
			t.Fatalf("retained payload = %#v", msg.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for retained value")
	}
}
