package mapping

import "fmt"

// ErrorKind classifies parse failures.
type ErrorKind uint8

const (
	// ErrInvalidGUID means the identifier field did not parse. Fatal for
	// the whole line.
	ErrInvalidGUID ErrorKind = iota
	// ErrUnexpectedEnd means the line ended before all required fields
	// were present. Fatal for the whole line.
	ErrUnexpectedEnd
	// ErrInvalidKeyValPair means a field did not contain exactly one ':'.
	ErrInvalidKeyValPair
	// ErrInvalidValue means a mapping value did not match the
	// micro-grammar or its numeric part did not fit uint16.
	ErrInvalidValue
	// ErrUnknownAxis means an axis key is not a canonical axis name.
	ErrUnknownAxis
	// ErrUnknownButton means a button key is not a canonical button name.
	ErrUnknownButton
	// ErrInvalidParserState is returned for every call after the parser
	// hit a fatal error.
	ErrInvalidParserState
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidGUID:
		return "GUID is invalid"
	case ErrUnexpectedEnd:
		return "mapping does not have all required fields"
	case ErrInvalidKeyValPair:
		return "expected key value pair"
	case ErrInvalidValue:
		return "value is not valid"
	case ErrUnknownAxis:
		return "invalid axis name"
	case ErrUnknownButton:
		return "invalid button name"
	case ErrInvalidParserState:
		return "attempt to parse after unrecoverable error"
	default:
		return "unknown error"
	}
}

// Error is a positioned parse diagnostic. Pos is the byte offset into
// the line where the offending field began.
type Error struct {
	Kind ErrorKind
	Pos  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d", e.Kind, e.Pos)
}

// Fatal reports whether the error latched the parser into its terminal
// state. Key/value errors are field-local and leave the rest of the
// line parseable.
func (e *Error) Fatal() bool {
	switch e.Kind {
	case ErrInvalidGUID, ErrUnexpectedEnd, ErrInvalidParserState:
		return true
	}
	return false
}

func newError(kind ErrorKind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}
