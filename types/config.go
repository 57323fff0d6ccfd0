package types

// ------------------------
// Demo configuration (published retained on config/demo)
// ------------------------

type PWMChannelConfig struct {
	Pin     int    `json:"pin"`
	Period  uint16 `json:"period"`
	Initial uint16 `json:"initial"`
}

type FadeConfig struct {
	StepTicks    uint16 `json:"step_ticks"`    // duty increment per action
	CeilingTicks uint16 `json:"ceiling_ticks"` // reset threshold while rising
	ActEvery     uint32 `json:"act_every"`     // act on every Nth 1 ms tick
}

type ServoPreset struct {
	Mask uint8  `json:"mask"` // exact button status mask
	Duty uint16 `json:"duty"` // servo duty in ticks
}

type SequenceStep struct {
	Duty   uint16 `json:"duty"`
	HoldMs uint32 `json:"hold_ms"`
}

type DemoConfig struct {
	FadeLED    PWMChannelConfig `json:"fade_led"` // driven by the 1 ms fade task
	LoopLED    PWMChannelConfig `json:"loop_led"` // driven by the foreground sequencer
	Servo      PWMChannelConfig `json:"servo"`
	ButtonPins []int            `json:"button_pins"` // bit i+2 of the mask maps to ButtonPins[i]
	Fade       FadeConfig       `json:"fade"`
	Presets    []ServoPreset    `json:"presets"`
	Sequence   []SequenceStep   `json:"sequence"`
}
