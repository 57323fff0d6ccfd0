// services/hal/registry_test.go
package hal

import (
	"testing"

	"pwmdemo-go/errcode"
)

type fakePinFactory struct{ max int }

func (f fakePinFactory) ByNumber(n int) (IRQPin, bool) {
	if n < 0 || n > f.max {
		return nil, false
	}
	return &fakeIRQPin{number: n}, true
}

type fakePWMFactory struct{ pins map[int]PWMChannel }

func (f fakePWMFactory) ByPin(n int) (PWMChannel, bool) {
	ch, ok := f.pins[n]
	return ch, ok
}

func TestRegistryClaims(t *testing.T) {
	r := NewRegistry(
		fakePinFactory{max: 28},
		fakePWMFactory{pins: map[int]PWMChannel{15: &fakePWMChannel{}}},
	)

	if _, err := r.ClaimPin("btn0", 2); err != nil {
		t.Fatalf("ClaimPin: %v", err)
	}
	if _, err := r.ClaimPin("btn1", 2); errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("double claim: got %v", err)
	}
	if _, err := r.ClaimPin("btn1", 99); err != errcode.UnknownPin {
		t.Fatalf("unknown pin: got %v", err)
	}

	r.ReleasePin("btn0", 2)
	if _, err := r.ClaimPin("btn1", 2); err != nil {
		t.Fatalf("claim after release: %v", err)
	}

	if _, err := r.ClaimPWM("led", 15); err != nil {
		t.Fatalf("ClaimPWM: %v", err)
	}
	if _, err := r.ClaimPWM("other", 15); errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("double PWM claim: got %v", err)
	}
	if _, err := r.ClaimPWM("led", 3); err != errcode.UnknownPin {
		t.Fatalf("unknown PWM pin: got %v", err)
	}
}

func TestRegistryReleaseWrongOwner(t *testing.T) {
	r := NewRegistry(fakePinFactory{max: 28}, fakePWMFactory{})

	if _, err := r.ClaimPin("btn0", 4); err != nil {
		t.Fatalf("ClaimPin: %v", err)
	}
	r.ReleasePin("someone_else", 4)
	if _, err := r.ClaimPin("btn1", 4); errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("release by non-owner must not free the pin: got %v", err)
	}
}
