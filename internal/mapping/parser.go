// Package mapping parses single-line SDL-style controller mapping
// entries: a device GUID, a free-text device name, and an arbitrary
// sequence of key:value pairs binding raw inputs to canonical buttons
// and axes, with an optional platform tag.
//
// The parser is a pull API over one borrowed line: each Next call
// consumes one comma-delimited field and yields a Token or a positioned
// Error. A bad GUID or a truncated line poisons the positional meaning
// of everything after it, so those errors latch the parser into a
// terminal state; a malformed key:value pair only loses that one field
// and parsing continues with the next.
package mapping

import (
	"strconv"
	"strings"

	"github.com/soar/ControllerMapDB/internal/gamepad"
	"github.com/soar/ControllerMapDB/internal/guid"
)

type state uint8

const (
	stateGUID state = iota
	stateName
	stateKeyVal
	stateFatal
)

// Parser walks one mapping line. Not safe for concurrent use; create
// one per line and discard it when Next reports end of input.
type Parser struct {
	data  string
	pos   int
	state state
}

// NewParser returns a parser bound to one mapping line.
func NewParser(line string) *Parser {
	return &Parser{data: line}
}

// Next returns the next token of the line. It returns (nil, nil) once
// the whole line has been consumed. After a fatal error every further
// call returns ErrInvalidParserState.
func (p *Parser) Next() (Token, error) {
	if p.pos >= len(p.data) {
		return nil, nil
	}
	switch p.state {
	case stateGUID:
		return p.parseGUID()
	case stateName:
		return p.parseName()
	case stateKeyVal:
		return p.parseKeyVal()
	default:
		return nil, newError(ErrInvalidParserState, p.pos)
	}
}

func (p *Parser) parseGUID() (Token, error) {
	nextComma := p.nextCommaOrEnd()

	id, err := guid.Parse(p.data[p.pos:nextComma])
	if err != nil {
		p.state = stateFatal
		return nil, newError(ErrInvalidGUID, p.pos)
	}
	if nextComma == len(p.data) {
		// A line holding only a GUID is incomplete.
		p.state = stateFatal
		return nil, newError(ErrUnexpectedEnd, p.pos)
	}

	p.state = stateName
	p.pos = nextComma + 1
	return GUID{ID: id}, nil
}

func (p *Parser) parseName() (Token, error) {
	nextComma := p.nextCommaOrEnd()
	name := p.data[p.pos:nextComma]

	p.state = stateKeyVal
	p.pos = nextComma + 1
	return Name{Value: name}, nil
}

func (p *Parser) parseKeyVal() (Token, error) {
	nextComma := p.nextCommaOrEnd()
	pair := p.data[p.pos:nextComma]
	pos := p.pos
	p.pos = nextComma + 1

	colon := strings.IndexByte(pair, ':')
	if colon < 0 || strings.IndexByte(pair[colon+1:], ':') >= 0 {
		return nil, newError(ErrInvalidKeyValPair, pos)
	}
	key, value := pair[:colon], pair[colon+1:]

	if key == "platform" {
		return Platform{Value: value}, nil
	}

	input := gamepad.RangeFull
	output := gamepad.RangeFull
	inverted := false
	isAxis := false
	var num string

	switch {
	case strings.HasPrefix(value, "+a"):
		isAxis = true
		input = gamepad.RangeUpperHalf
		num, inverted = stripInvert(value[2:])

	case strings.HasPrefix(value, "-a"):
		isAxis = true
		input = gamepad.RangeLowerHalf
		num, inverted = stripInvert(value[2:])

	case strings.HasPrefix(value, "a"):
		isAxis = true
		num, inverted = stripInvert(value[1:])

	case strings.HasPrefix(value, "b"):
		num = value[1:]

	case strings.HasPrefix(value, "h"):
		return p.parseHat(key, value, pos)

	default:
		return nil, newError(ErrInvalidValue, pos)
	}

	// ParseUint rejects a leading '+' in the id, so "b+3" is an invalid
	// value. No published database carries one.
	source, err := strconv.ParseUint(num, 10, 16)
	if err != nil {
		return nil, newError(ErrInvalidValue, pos)
	}

	if isAxis {
		switch {
		case strings.HasPrefix(key, "+"):
			output = gamepad.RangeUpperHalf
			key = key[1:]
		case strings.HasPrefix(key, "-"):
			output = gamepad.RangeLowerHalf
			key = key[1:]
		}

		axis, ok := LookupAxis(key)
		if !ok {
			return nil, newError(ErrUnknownAxis, pos)
		}
		return AxisMapping{
			Source:   uint16(source),
			Target:   axis,
			Input:    input,
			Output:   output,
			Inverted: inverted,
		}, nil
	}

	btn, ok := LookupButton(key)
	if !ok {
		return nil, newError(ErrUnknownButton, pos)
	}
	return ButtonMapping{Source: uint16(source), Target: btn}, nil
}

// parseHat decodes h<idx>.<direction>. The key resolves against the
// button table: hat entries are encoded as button targets in this
// representation.
func (p *Parser) parseHat(key, value string, pos int) (Token, error) {
	dot := strings.IndexByte(value, '.')
	if dot < 0 {
		return nil, newError(ErrInvalidValue, pos)
	}
	hat, err := strconv.ParseUint(value[1:dot], 10, 16)
	if err != nil {
		return nil, newError(ErrInvalidValue, pos+1)
	}
	direction, err := strconv.ParseUint(value[dot+1:], 10, 16)
	if err != nil {
		return nil, newError(ErrInvalidValue, pos+dot+1)
	}

	btn, ok := LookupButton(key)
	if !ok {
		return nil, newError(ErrUnknownButton, pos)
	}
	return HatMapping{
		Hat:       uint16(hat),
		Direction: uint16(direction),
		Target:    btn,
	}, nil
}

// stripInvert removes the trailing '~' inversion marker if present.
func stripInvert(s string) (string, bool) {
	if strings.HasSuffix(s, "~") {
		return s[:len(s)-1], true
	}
	return s, false
}

func (p *Parser) nextCommaOrEnd() int {
	if i := strings.IndexByte(p.data[p.pos:], ','); i >= 0 {
		return i + p.pos
	}
	return len(p.data)
}
