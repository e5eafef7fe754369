package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soar/ControllerMapDB/internal/gamepad"
	"github.com/soar/ControllerMapDB/internal/guid"
)

const testGUID = "030000005e0400008e02000014010000"

func parseKV(t *testing.T, pair string) (Token, error) {
	t.Helper()
	p := NewParser(testGUID + ",Pad," + pair)

	tok, err := p.Next()
	require.NoError(t, err)
	require.IsType(t, GUID{}, tok)

	tok, err = p.Next()
	require.NoError(t, err)
	require.IsType(t, Name{}, tok)

	return p.Next()
}

func TestParseFullLine(t *testing.T) {
	line := testGUID + ",XInput Controller,a:b0,b:b1,leftx:a0,lefty:a1,dpup:h0.1,platform:Windows"
	p := NewParser(line)

	want := []Token{
		GUID{ID: mustGUID(t, testGUID)},
		Name{Value: "XInput Controller"},
		ButtonMapping{Source: 0, Target: gamepad.ButtonSouth},
		ButtonMapping{Source: 1, Target: gamepad.ButtonEast},
		AxisMapping{Source: 0, Target: gamepad.AxisLeftStickX, Input: gamepad.RangeFull, Output: gamepad.RangeFull},
		AxisMapping{Source: 1, Target: gamepad.AxisLeftStickY, Input: gamepad.RangeFull, Output: gamepad.RangeFull},
		HatMapping{Hat: 0, Direction: 1, Target: gamepad.ButtonDPadUp},
		Platform{Value: "Windows"},
	}

	for i, expected := range want {
		tok, err := p.Next()
		require.NoError(t, err, "token %d", i)
		assert.Equal(t, expected, tok, "token %d", i)
	}

	tok, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, tok, "line should be exhausted")
}

func TestParseGUIDStage(t *testing.T) {
	t.Run("valid GUID advances to name", func(t *testing.T) {
		p := NewParser(testGUID + ",Some Name")

		tok, err := p.Next()
		require.NoError(t, err)
		g, ok := tok.(GUID)
		require.True(t, ok)
		assert.Equal(t, uint16(0x045e), g.ID.Vendor())
		assert.Equal(t, uint16(0x028e), g.ID.Product())

		tok, err = p.Next()
		require.NoError(t, err)
		assert.Equal(t, Name{Value: "Some Name"}, tok)
	})

	t.Run("invalid GUID is fatal and sticky", func(t *testing.T) {
		p := NewParser("not-a-guid,Name,a:b0")

		tok, err := p.Next()
		assert.Nil(t, tok)
		requireKind(t, err, ErrInvalidGUID, 0)

		for i := 0; i < 3; i++ {
			tok, err = p.Next()
			assert.Nil(t, tok)
			requireKind(t, err, ErrInvalidParserState, 0)
		}
	})

	t.Run("GUID-only line is incomplete", func(t *testing.T) {
		p := NewParser(testGUID)

		tok, err := p.Next()
		assert.Nil(t, tok)
		requireKind(t, err, ErrUnexpectedEnd, 0)

		tok, err = p.Next()
		assert.Nil(t, tok)
		requireKind(t, err, ErrInvalidParserState, 0)
	})
}

func TestParseNameStage(t *testing.T) {
	t.Run("empty name accepted", func(t *testing.T) {
		p := NewParser(testGUID + ",,a:b0")

		_, err := p.Next()
		require.NoError(t, err)

		tok, err := p.Next()
		require.NoError(t, err)
		assert.Equal(t, Name{Value: ""}, tok)

		tok, err = p.Next()
		require.NoError(t, err)
		assert.Equal(t, ButtonMapping{Source: 0, Target: gamepad.ButtonSouth}, tok)
	})

	t.Run("name is never validated", func(t *testing.T) {
		p := NewParser(testGUID + ",!!! weird:name~h0.1 !!!")

		_, err := p.Next()
		require.NoError(t, err)

		tok, err := p.Next()
		require.NoError(t, err)
		assert.Equal(t, Name{Value: "!!! weird:name~h0.1 !!!"}, tok)
	})
}

func TestParseKeyValPairs(t *testing.T) {
	tests := []struct {
		name string
		pair string
		want Token
	}{
		{
			name: "full range axis",
			pair: "leftx:a3",
			want: AxisMapping{Source: 3, Target: gamepad.AxisLeftStickX, Input: gamepad.RangeFull, Output: gamepad.RangeFull},
		},
		{
			name: "all axis modifiers at once",
			pair: "+leftx:-a3~",
			want: AxisMapping{Source: 3, Target: gamepad.AxisLeftStickX, Input: gamepad.RangeLowerHalf, Output: gamepad.RangeUpperHalf, Inverted: true},
		},
		{
			name: "upper half input",
			pair: "righty:+a4",
			want: AxisMapping{Source: 4, Target: gamepad.AxisRightStickY, Input: gamepad.RangeUpperHalf, Output: gamepad.RangeFull},
		},
		{
			name: "lower half output",
			pair: "-lefty:a1",
			want: AxisMapping{Source: 1, Target: gamepad.AxisLeftStickY, Input: gamepad.RangeFull, Output: gamepad.RangeLowerHalf},
		},
		{
			name: "inverted full range",
			pair: "rightx:a2~",
			want: AxisMapping{Source: 2, Target: gamepad.AxisRightStickX, Input: gamepad.RangeFull, Output: gamepad.RangeFull, Inverted: true},
		},
		{
			name: "trigger axis",
			pair: "lefttrigger:a5",
			want: AxisMapping{Source: 5, Target: gamepad.AxisLeftTrigger2, Input: gamepad.RangeFull, Output: gamepad.RangeFull},
		},
		{
			name: "button",
			pair: "a:b5",
			want: ButtonMapping{Source: 5, Target: gamepad.ButtonSouth},
		},
		{
			name: "guide button",
			pair: "guide:b10",
			want: ButtonMapping{Source: 10, Target: gamepad.ButtonMode},
		},
		{
			name: "hat",
			pair: "a:h0.2",
			want: HatMapping{Hat: 0, Direction: 2, Target: gamepad.ButtonSouth},
		},
		{
			name: "hat with larger index",
			pair: "dpleft:h1.8",
			want: HatMapping{Hat: 1, Direction: 8, Target: gamepad.ButtonDPadLeft},
		},
		{
			name: "platform is passed through uninterpreted",
			pair: "platform:Nonexistent OS",
			want: Platform{Value: "Nonexistent OS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := parseKV(t, tt.pair)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tok)
		})
	}
}

func TestParseKeyValErrors(t *testing.T) {
	// Offset of the third field in the lines built by parseKV.
	fieldPos := len(testGUID) + len(",Pad,")

	tests := []struct {
		name string
		pair string
		kind ErrorKind
		pos  int
	}{
		{name: "no colon", pair: "nocolon", kind: ErrInvalidKeyValPair, pos: fieldPos},
		{name: "unknown value shape", pair: "a:q1", kind: ErrInvalidValue, pos: fieldPos},
		{name: "empty value", pair: "a:", kind: ErrInvalidValue, pos: fieldPos},
		{name: "bare axis prefix", pair: "leftx:a", kind: ErrInvalidValue, pos: fieldPos},
		{name: "bare sign", pair: "leftx:+", kind: ErrInvalidValue, pos: fieldPos},
		{name: "sign without axis marker", pair: "leftx:+3", kind: ErrInvalidValue, pos: fieldPos},
		{name: "source id overflows uint16", pair: "a:b70000", kind: ErrInvalidValue, pos: fieldPos},
		{name: "hat without dot", pair: "dpup:h02", kind: ErrInvalidValue, pos: fieldPos},
		{name: "hat index not numeric", pair: "dpup:hx.1", kind: ErrInvalidValue, pos: fieldPos + 1},
		{name: "hat direction missing", pair: "dpup:h0.", kind: ErrInvalidValue, pos: fieldPos + 3},
		{name: "unknown button key", pair: "foobar:b1", kind: ErrUnknownButton, pos: fieldPos},
		{name: "unknown button key on hat", pair: "foobar:h0.1", kind: ErrUnknownButton, pos: fieldPos},
		{name: "unknown axis key", pair: "foobar:a1", kind: ErrUnknownAxis, pos: fieldPos},
		{name: "button name used as axis", pair: "dpup:a1", kind: ErrUnknownAxis, pos: fieldPos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := parseKV(t, tt.pair)
			assert.Nil(t, tok)
			requireKind(t, err, tt.kind, tt.pos)
		})
	}
}

func TestKeyValErrorsAreFieldLocal(t *testing.T) {
	p := NewParser(testGUID + ",Pad,broken,a:b0,x:y:z,b:b1")

	_, err := p.Next()
	require.NoError(t, err)
	_, err = p.Next()
	require.NoError(t, err)

	tok, err := p.Next()
	assert.Nil(t, tok)
	requireKind(t, err, ErrInvalidKeyValPair, len(testGUID)+5)

	tok, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, ButtonMapping{Source: 0, Target: gamepad.ButtonSouth}, tok)

	tok, err = p.Next()
	assert.Nil(t, tok)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrInvalidKeyValPair, perr.Kind)
	assert.False(t, perr.Fatal())

	tok, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, ButtonMapping{Source: 1, Target: gamepad.ButtonEast}, tok)

	tok, err = p.Next()
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestTrailingCommaEndsLine(t *testing.T) {
	// The cursor lands exactly past the end after the trailing comma, so
	// the line is simply exhausted.
	p := NewParser(testGUID + ",Pad,a:b0,")

	for i := 0; i < 3; i++ {
		_, err := p.Next()
		require.NoError(t, err)
	}

	tok, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestEmptyFieldBetweenCommas(t *testing.T) {
	p := NewParser(testGUID + ",Pad,,a:b0")

	for i := 0; i < 2; i++ {
		_, err := p.Next()
		require.NoError(t, err)
	}

	tok, err := p.Next()
	assert.Nil(t, tok)
	requireKind(t, err, ErrInvalidKeyValPair, len(testGUID)+len(",Pad,"))

	tok, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, ButtonMapping{Source: 0, Target: gamepad.ButtonSouth}, tok)
}

func TestErrorString(t *testing.T) {
	err := newError(ErrUnknownAxis, 42)
	assert.Equal(t, "invalid axis name at 42", err.Error())
}

func requireKind(t *testing.T, err error, kind ErrorKind, pos int) {
	t.Helper()
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, kind, perr.Kind)
	assert.Equal(t, pos, perr.Pos)
}

func mustGUID(t *testing.T, s string) guid.GUID {
	t.Helper()
	g, err := guid.Parse(s)
	require.NoError(t, err)
	return g
}
