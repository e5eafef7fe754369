package guid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Xbox 360 controller GUID as it appears in SDL mapping databases.
const xbox360 = "030000005e0400008e02000014010000"

func TestParse(t *testing.T) {
	g, err := Parse(xbox360)
	require.NoError(t, err)

	assert.Equal(t, BusUSB, g.Bus())
	assert.Equal(t, uint16(0), g.CRC())
	assert.Equal(t, uint16(0x045e), g.Vendor())
	assert.Equal(t, uint16(0x028e), g.Product())
	assert.Equal(t, uint16(0x0114), g.Version())
	assert.Equal(t, xbox360, g.String())
}

func TestParseHyphenated(t *testing.T) {
	g, err := Parse("03000000-5e04-0000-8e02-000014010000")
	require.NoError(t, err)

	want, err := Parse(xbox360)
	require.NoError(t, err)
	assert.Equal(t, want, g)
}

func TestParseUppercase(t *testing.T) {
	g, err := Parse("030000005E0400008E02000014010000")
	require.NoError(t, err)
	assert.Equal(t, xbox360, g.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "0300"},
		{name: "too long", input: xbox360 + "00"},
		{name: "non-hex digits", input: "03000000ze0400008e02000014010000"},
		{name: "hyphens in wrong places", input: "0300-00005e04-0000-8e02000014010000"},
		{name: "35 chars", input: "03000000-5e04-0000-8e02-00001401000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFromValues(t *testing.T) {
	g := FromValues(BusUSB, 0xBEEF, 0x054c, 0x0ce6, 0x0100)

	assert.Equal(t, BusUSB, g.Bus())
	assert.Equal(t, uint16(0xBEEF), g.CRC())
	assert.Equal(t, uint16(0x054c), g.Vendor())
	assert.Equal(t, uint16(0x0ce6), g.Product())
	assert.Equal(t, uint16(0x0100), g.Version())

	// Round-trip through the text form.
	back, err := Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestIsZero(t *testing.T) {
	var g GUID
	assert.True(t, g.IsZero())

	g = FromValues(BusUSB, 0, 0, 0, 0)
	assert.False(t, g.IsZero())
}
