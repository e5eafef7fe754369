package gamepad

import "math"

// AxisBinding maps a raw axis index to a canonical axis, restricted to
// the input half-range the mapping names and rescaled into its output
// half-range.
type AxisBinding struct {
	Index    int32
	Target   Axis
	Input    AxisRange
	Output   AxisRange
	Inverted bool
}

// ButtonBinding maps a raw button index to a canonical button.
type ButtonBinding struct {
	Index  int32
	Target Button
}

// HatBinding maps one direction bit of a hat switch to a canonical
// button. Direction is the raw SDL bitmask from the mapping line.
type HatBinding struct {
	Hat       int32
	Direction uint16
	Target    Button
}

// Profile is a compiled device mapping: the result of resolving a
// mapping database entry into directly pollable bindings.
type Profile struct {
	Name    string
	Axes    []AxisBinding
	Buttons []ButtonBinding
	Hats    []HatBinding
}

// Apply transforms a normalized raw axis value (-1..1) through the
// binding's input range, inversion flag and output range.
func (b AxisBinding) Apply(v float64) float64 {
	switch b.Input {
	case RangeLowerHalf:
		v = clamp(v, -1, 0)*2 + 1
	case RangeUpperHalf:
		v = clamp(v, 0, 1)*2 - 1
	}
	if b.Inverted {
		v = -v
	}
	switch b.Output {
	case RangeLowerHalf:
		v = (v - 1) / 2
	case RangeUpperHalf:
		v = (v + 1) / 2
	}
	return v
}

// NormalizeAxis converts a raw axis value (-32768..32767) to -1.0..1.0.
func NormalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// ApplyDeadzone returns 0 if the value is within the deadzone threshold.
func ApplyDeadzone(v float64, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HatButton returns the d-pad button conventionally assigned to a single
// hat direction bit, for databases that omit explicit hat entries.
func HatButton(direction uint16) (Button, bool) {
	switch direction {
	case HatUp:
		return ButtonDPadUp, true
	case HatRight:
		return ButtonDPadRight, true
	case HatDown:
		return ButtonDPadDown, true
	case HatLeft:
		return ButtonDPadLeft, true
	}
	return ButtonUnknown, false
}

// GenericProfile is the fallback used for devices with no database
// entry. It follows the most common raw layout (Xbox-style).
func GenericProfile() *Profile {
	return &Profile{
		Name: "generic",
		Axes: []AxisBinding{
			{Index: 0, Target: AxisLeftStickX, Input: RangeFull, Output: RangeFull},
			{Index: 1, Target: AxisLeftStickY, Input: RangeFull, Output: RangeFull},
			{Index: 2, Target: AxisRightStickX, Input: RangeFull, Output: RangeFull},
			{Index: 3, Target: AxisRightStickY, Input: RangeFull, Output: RangeFull},
			{Index: 4, Target: AxisLeftTrigger2, Input: RangeFull, Output: RangeUpperHalf},
			{Index: 5, Target: AxisRightTrigger2, Input: RangeFull, Output: RangeUpperHalf},
		},
		Buttons: []ButtonBinding{
			{Index: 0, Target: ButtonSouth},
			{Index: 1, Target: ButtonEast},
			{Index: 2, Target: ButtonWest},
			{Index: 3, Target: ButtonNorth},
			{Index: 4, Target: ButtonLeftTrigger},
			{Index: 5, Target: ButtonRightTrigger},
			{Index: 6, Target: ButtonSelect},
			{Index: 7, Target: ButtonStart},
			{Index: 8, Target: ButtonLeftThumb},
			{Index: 9, Target: ButtonRightThumb},
			{Index: 10, Target: ButtonMode},
		},
		Hats: []HatBinding{
			{Hat: 0, Direction: HatUp, Target: ButtonDPadUp},
			{Hat: 0, Direction: HatRight, Target: ButtonDPadRight},
			{Hat: 0, Direction: HatDown, Target: ButtonDPadDown},
			{Hat: 0, Direction: HatLeft, Target: ButtonDPadLeft},
		},
	}
}
