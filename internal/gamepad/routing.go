package gamepad

// ApplyAxis routes a processed axis value into the state. Trigger axes
// display the upper half of their domain as 0..1.
func (s *GamepadState) ApplyAxis(target Axis, val float64) {
	switch target {
	case AxisLeftStickX:
		s.Sticks.Left.Position.X = val
	case AxisLeftStickY:
		s.Sticks.Left.Position.Y = val
	case AxisRightStickX:
		s.Sticks.Right.Position.X = val
	case AxisRightStickY:
		s.Sticks.Right.Position.Y = val
	case AxisLeftTrigger, AxisLeftTrigger2, AxisLeftZ:
		s.Triggers.LT.Value = clamp(val, 0, 1)
	case AxisRightTrigger, AxisRightTrigger2, AxisRightZ:
		s.Triggers.RT.Value = clamp(val, 0, 1)
	}
}

// ApplyButton routes a button press into the state. Trigger buttons set
// the trigger value as well so digital triggers still show movement.
func (s *GamepadState) ApplyButton(target Button, pressed bool) {
	switch target {
	case ButtonSouth:
		s.Buttons.South = pressed
	case ButtonEast:
		s.Buttons.East = pressed
	case ButtonWest:
		s.Buttons.West = pressed
	case ButtonNorth:
		s.Buttons.North = pressed
	case ButtonC:
		s.Buttons.C = pressed
	case ButtonZ:
		s.Buttons.Z = pressed
	case ButtonLeftTrigger:
		s.Buttons.LB = pressed
	case ButtonRightTrigger:
		s.Buttons.RB = pressed
	case ButtonLeftTrigger2:
		s.Triggers.LT.Pressed = pressed
		if pressed {
			s.Triggers.LT.Value = 1
		}
	case ButtonRightTrigger2:
		s.Triggers.RT.Pressed = pressed
		if pressed {
			s.Triggers.RT.Value = 1
		}
	case ButtonSelect:
		s.Buttons.Select = pressed
	case ButtonStart:
		s.Buttons.Start = pressed
	case ButtonMode:
		s.Buttons.Mode = pressed
	case ButtonLeftThumb:
		s.Sticks.Left.Pressed = pressed
	case ButtonRightThumb:
		s.Sticks.Right.Pressed = pressed
	case ButtonDPadUp:
		s.Dpad.Up = pressed
	case ButtonDPadDown:
		s.Dpad.Down = pressed
	case ButtonDPadLeft:
		s.Dpad.Left = pressed
	case ButtonDPadRight:
		s.Dpad.Right = pressed
	}
}
