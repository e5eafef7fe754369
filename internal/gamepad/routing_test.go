package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyAxisRouting(t *testing.T) {
	var s GamepadState
	s.ApplyAxis(AxisLeftStickX, -0.5)
	s.ApplyAxis(AxisLeftStickY, 0.25)
	s.ApplyAxis(AxisRightStickX, 1)
	s.ApplyAxis(AxisRightStickY, -1)

	assert.Equal(t, -0.5, s.Sticks.Left.Position.X)
	assert.Equal(t, 0.25, s.Sticks.Left.Position.Y)
	assert.Equal(t, 1.0, s.Sticks.Right.Position.X)
	assert.Equal(t, -1.0, s.Sticks.Right.Position.Y)
}

func TestApplyAxisTriggersClampToUnit(t *testing.T) {
	var s GamepadState
	s.ApplyAxis(AxisLeftTrigger2, -0.3)
	assert.Equal(t, 0.0, s.Triggers.LT.Value, "negative trigger input clamps to 0")

	s.ApplyAxis(AxisRightTrigger2, 1.5)
	assert.Equal(t, 1.0, s.Triggers.RT.Value, "overshoot clamps to 1")

	// The Z aliases land on the same triggers.
	s.ApplyAxis(AxisLeftZ, 0.5)
	assert.Equal(t, 0.5, s.Triggers.LT.Value)
}

func TestApplyButtonRouting(t *testing.T) {
	var s GamepadState
	s.ApplyButton(ButtonSouth, true)
	s.ApplyButton(ButtonSelect, true)
	s.ApplyButton(ButtonLeftThumb, true)
	s.ApplyButton(ButtonDPadLeft, true)

	assert.True(t, s.Buttons.South)
	assert.True(t, s.Buttons.Select)
	assert.True(t, s.Sticks.Left.Pressed)
	assert.True(t, s.Dpad.Left)
	assert.False(t, s.Buttons.East)
}

func TestApplyButtonDigitalTrigger(t *testing.T) {
	var s GamepadState
	s.ApplyButton(ButtonRightTrigger2, true)
	assert.True(t, s.Triggers.RT.Pressed)
	assert.Equal(t, 1.0, s.Triggers.RT.Value, "digital trigger press shows full travel")

	s.ApplyButton(ButtonRightTrigger2, false)
	assert.False(t, s.Triggers.RT.Pressed)
}
