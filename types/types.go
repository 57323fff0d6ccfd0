package types

// ------------------------
// PWM
// ------------------------

type PWMInfo struct {
	Pin     int    `json:"pin"`
	Period  uint16 `json:"period"`  // ticks per PWM cycle
	Initial uint16 `json:"initial"` // initial duty in ticks
}

type PWMValue struct {
	Level uint16 `json:"level"` // 0..Period (duty ticks)
}

type PWMSet struct {
	Level uint16 `json:"level"` // 0..Period (duty ticks)
}

// ------------------------
// Buttons
// ------------------------

// ButtonEvent carries the 8-bit status mask reported on a rising edge.
// One bit per monitored line; bits follow the PMOD BTN wiring (bit 2..5).
type ButtonEvent struct {
	Mask uint8 `json:"mask"`
}
