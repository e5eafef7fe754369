package gamepad

// Button is a canonical controller button. Mapping databases resolve
// their button names into this closed set.
type Button uint8

const (
	ButtonUnknown Button = iota
	ButtonSouth
	ButtonEast
	ButtonC
	ButtonNorth
	ButtonWest
	ButtonZ
	ButtonLeftTrigger
	ButtonLeftTrigger2
	ButtonRightTrigger
	ButtonRightTrigger2
	ButtonSelect
	ButtonStart
	ButtonMode
	ButtonLeftThumb
	ButtonRightThumb
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

var buttonNames = [...]string{
	ButtonUnknown:       "Unknown",
	ButtonSouth:         "South",
	ButtonEast:          "East",
	ButtonC:             "C",
	ButtonNorth:         "North",
	ButtonWest:          "West",
	ButtonZ:             "Z",
	ButtonLeftTrigger:   "LeftTrigger",
	ButtonLeftTrigger2:  "LeftTrigger2",
	ButtonRightTrigger:  "RightTrigger",
	ButtonRightTrigger2: "RightTrigger2",
	ButtonSelect:        "Select",
	ButtonStart:         "Start",
	ButtonMode:          "Mode",
	ButtonLeftThumb:     "LeftThumb",
	ButtonRightThumb:    "RightThumb",
	ButtonDPadUp:        "DPadUp",
	ButtonDPadDown:      "DPadDown",
	ButtonDPadLeft:      "DPadLeft",
	ButtonDPadRight:     "DPadRight",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "Unknown"
}

// Axis is a canonical controller axis.
type Axis uint8

const (
	AxisUnknown Axis = iota
	AxisLeftStickX
	AxisLeftStickY
	AxisLeftZ
	AxisRightStickX
	AxisRightStickY
	AxisRightZ
	AxisLeftTrigger
	AxisLeftTrigger2
	AxisRightTrigger
	AxisRightTrigger2
)

var axisNames = [...]string{
	AxisUnknown:       "Unknown",
	AxisLeftStickX:    "LeftStickX",
	AxisLeftStickY:    "LeftStickY",
	AxisLeftZ:         "LeftZ",
	AxisRightStickX:   "RightStickX",
	AxisRightStickY:   "RightStickY",
	AxisRightZ:        "RightZ",
	AxisLeftTrigger:   "LeftTrigger",
	AxisLeftTrigger2:  "LeftTrigger2",
	AxisRightTrigger:  "RightTrigger",
	AxisRightTrigger2: "RightTrigger2",
}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return "Unknown"
}

// AxisRange selects which half of the [-1,1] analog domain a mapping
// reads from (input side) or writes into (output side).
type AxisRange uint8

const (
	RangeLowerHalf AxisRange = iota
	RangeUpperHalf
	RangeFull
)

func (r AxisRange) String() string {
	switch r {
	case RangeLowerHalf:
		return "LowerHalf"
	case RangeUpperHalf:
		return "UpperHalf"
	default:
		return "Full"
	}
}

// SDL hat direction bits.
const (
	HatUp    uint16 = 0x01
	HatRight uint16 = 0x02
	HatDown  uint16 = 0x04
	HatLeft  uint16 = 0x08
)
