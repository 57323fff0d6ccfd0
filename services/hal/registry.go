// services/hal/registry.go
package hal

import (
	"sync"

	"pwmdemo-go/errcode"
)

// Registry hands out pin-backed handles and tracks ownership so two devices
// cannot claim the same pin.
type Registry struct {
	mu   sync.Mutex
	used map[int]string // pin -> devID
	pins PinFactory
	pwms PWMFactory
}

func NewRegistry(pins PinFactory, pwms PWMFactory) *Registry {
	return &Registry{
		used: make(map[int]string),
		pins: pins,
		pwms: pwms,
	}
}

func (r *Registry) claim(devID string, n int) error {
	if owner, inUse := r.used[n]; inUse && owner != "" {
		return &errcode.E{C: errcode.PinInUse, Op: "claim", Msg: "pin owned by " + owner}
	}
	r.used[n] = devID
	return nil
}

// ClaimPin claims a GPIO input pin for devID.
func (r *Registry) ClaimPin(devID string, n int) (IRQPin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, errcode.UnknownPin
	}
	if err := r.claim(devID, n); err != nil {
		return nil, err
	}
	return p, nil
}

// ClaimPWM claims a PWM output pin for devID.
func (r *Registry) ClaimPWM(devID string, n int) (PWMChannel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.pwms.ByPin(n)
	if !ok {
		return nil, errcode.UnknownPin
	}
	if err := r.claim(devID, n); err != nil {
		return nil, err
	}
	return ch, nil
}

// ReleasePin releases a claim if devID still owns it.
func (r *Registry) ReleasePin(devID string, n int) {
	r.mu.Lock()
	if owner, ok := r.used[n]; ok && owner == devID {
		delete(r.used, n)
	}
	r.mu.Unlock()
}
