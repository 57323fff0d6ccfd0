// services/servo/servo.go
package servo

import "pwmdemo-go/types"

// Output receives duty updates. *hal.PWMDevice satisfies it.
type Output interface {
	SetDuty(dutyTicks uint16)
}

// DefaultPresets is the HS-485HB position table for the PMOD BTN module:
// one exact status mask per button, duty in ticks of the 62500-tick period.
// 1875 ticks is a 600 us pulse; 7187 is 2.3 ms.
func DefaultPresets() []types.ServoPreset {
	return []types.ServoPreset{
		{Mask: 0x04, Duty: 1875}, // BTN0
		{Mask: 0x08, Duty: 3125}, // BTN1
		{Mask: 0x10, Duty: 5000}, // BTN2
		{Mask: 0x20, Duty: 7187}, // BTN3
	}
}

// Mapper turns button status masks into servo duty presets. Dispatch is on
// the exact mask value: combined or unknown masks are silently dropped.
// No debounce, no state between calls.
type Mapper struct {
	out   Output
	table map[uint8]uint16
}

func NewMapper(out Output, presets []types.ServoPreset) *Mapper {
	table := make(map[uint8]uint16, len(presets))
	for _, p := range presets {
		table[p.Mask] = p.Duty
	}
	return &Mapper{out: out, table: table}
}

// HandleMask is the button source callback.
func (m *Mapper) HandleMask(mask uint8) {
	duty, ok := m.table[mask]
	if !ok {
		return
	}
	m.out.SetDuty(duty)
}
