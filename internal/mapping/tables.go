package mapping

import (
	"slices"

	"github.com/soar/ControllerMapDB/internal/gamepad"
)

// The two lookup tables pair SDL mapping names with canonical symbols.
// Each name slice is sorted and index-aligned with its target slice;
// resolution is a binary search on the name. Must stay sorted.

var buttonNames = []string{
	"a", "b", "back", "c", "dpdown", "dpleft", "dpright", "dpup", "guide",
	"leftshoulder", "leftstick", "lefttrigger", "rightshoulder",
	"rightstick", "righttrigger", "start", "x", "y", "z",
}

var buttonTargets = []gamepad.Button{
	gamepad.ButtonSouth, gamepad.ButtonEast, gamepad.ButtonSelect,
	gamepad.ButtonC, gamepad.ButtonDPadDown, gamepad.ButtonDPadLeft,
	gamepad.ButtonDPadRight, gamepad.ButtonDPadUp, gamepad.ButtonMode,
	gamepad.ButtonLeftTrigger, gamepad.ButtonLeftThumb,
	gamepad.ButtonLeftTrigger2, gamepad.ButtonRightTrigger,
	gamepad.ButtonRightThumb, gamepad.ButtonRightTrigger2,
	gamepad.ButtonStart, gamepad.ButtonWest, gamepad.ButtonNorth,
	gamepad.ButtonZ,
}

var axisNames = []string{
	"leftshoulder", "lefttrigger", "leftx", "lefty", "leftz",
	"rightshoulder", "righttrigger", "rightx", "righty", "rightz",
}

var axisTargets = []gamepad.Axis{
	gamepad.AxisLeftTrigger, gamepad.AxisLeftTrigger2,
	gamepad.AxisLeftStickX, gamepad.AxisLeftStickY, gamepad.AxisLeftZ,
	gamepad.AxisRightTrigger, gamepad.AxisRightTrigger2,
	gamepad.AxisRightStickX, gamepad.AxisRightStickY, gamepad.AxisRightZ,
}

// LookupButton resolves an SDL button name to its canonical symbol.
func LookupButton(name string) (gamepad.Button, bool) {
	i, ok := slices.BinarySearch(buttonNames, name)
	if !ok {
		return gamepad.ButtonUnknown, false
	}
	return buttonTargets[i], true
}

// LookupAxis resolves an SDL axis name to its canonical symbol.
func LookupAxis(name string) (gamepad.Axis, bool) {
	i, ok := slices.BinarySearch(axisNames, name)
	if !ok {
		return gamepad.AxisUnknown, false
	}
	return axisTargets[i], true
}
