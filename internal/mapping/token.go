package mapping

import (
	"github.com/soar/ControllerMapDB/internal/gamepad"
	"github.com/soar/ControllerMapDB/internal/guid"
)

// Token is one decoded field of a mapping line.
type Token interface {
	token()
}

// GUID is the parsed device identifier, always the first field.
type GUID struct {
	ID guid.GUID
}

// Name is the device name field, passed through verbatim.
type Name struct {
	Value string
}

// Platform is the value of a "platform" pair, uninterpreted.
type Platform struct {
	Value string
}

// AxisMapping binds raw axis Source to a canonical axis, with the input
// and output half-ranges and inversion flag from the value micro-grammar.
type AxisMapping struct {
	Source   uint16
	Target   gamepad.Axis
	Input    gamepad.AxisRange
	Output   gamepad.AxisRange
	Inverted bool
}

// ButtonMapping binds raw button Source to a canonical button.
type ButtonMapping struct {
	Source uint16
	Target gamepad.Button
}

// HatMapping binds one direction bit of hat switch Hat to a canonical
// button. This is the raw database representation; converting it into
// axis or d-pad semantics is the consumer's job.
type HatMapping struct {
	Hat       uint16
	Direction uint16
	Target    gamepad.Button
}

func (GUID) token()          {}
func (Name) token()          {}
func (Platform) token()      {}
func (AxisMapping) token()   {}
func (ButtonMapping) token() {}
func (HatMapping) token()    {}
