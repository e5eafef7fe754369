// Package guid implements the SDL device GUID: a 16-byte identifier
// encoding bus type, a CRC of the device name, vendor, product and
// version as little-endian 16-bit fields. It is the identifier that
// keys entries in controller mapping databases.
package guid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// GUID is an SDL joystick GUID.
//
// Byte layout (all fields little-endian):
//
//	0-1   bus type
//	2-3   CRC16 of the device name
//	4-5   vendor id
//	8-9   product id
//	12-13 version
//	14-15 driver-specific
type GUID [16]byte

// Common bus types as reported by SDL.
const (
	BusUSB       uint16 = 0x03
	BusBluetooth uint16 = 0x05
)

// Parse converts the canonical text form of a GUID into its binary
// representation. The canonical form is 32 hex digits; the hyphenated
// UUID form (8-4-4-4-12) is also accepted.
func Parse(s string) (GUID, error) {
	var g GUID

	if len(s) == 36 {
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return g, fmt.Errorf("guid: malformed hyphenated form %q", s)
		}
		s = strings.ReplaceAll(s, "-", "")
	}
	if len(s) != 32 {
		return g, fmt.Errorf("guid: want 32 hex digits, got %d", len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return g, fmt.Errorf("guid: %w", err)
	}
	copy(g[:], raw)
	return g, nil
}

// FromValues synthesizes a GUID from its component fields, the way SDL
// builds one for a device that reports vendor/product/version directly.
func FromValues(bus, crc, vendor, product, version uint16) GUID {
	var g GUID
	binary.LittleEndian.PutUint16(g[0:2], bus)
	binary.LittleEndian.PutUint16(g[2:4], crc)
	binary.LittleEndian.PutUint16(g[4:6], vendor)
	binary.LittleEndian.PutUint16(g[8:10], product)
	binary.LittleEndian.PutUint16(g[12:14], version)
	return g
}

// Bus returns the bus type field.
func (g GUID) Bus() uint16 { return binary.LittleEndian.Uint16(g[0:2]) }

// CRC returns the device name CRC16 field.
func (g GUID) CRC() uint16 { return binary.LittleEndian.Uint16(g[2:4]) }

// Vendor returns the USB vendor id field.
func (g GUID) Vendor() uint16 { return binary.LittleEndian.Uint16(g[4:6]) }

// Product returns the USB product id field.
func (g GUID) Product() uint16 { return binary.LittleEndian.Uint16(g[8:10]) }

// Version returns the device version field.
func (g GUID) Version() uint16 { return binary.LittleEndian.Uint16(g[12:14]) }

// IsZero reports whether every byte of the GUID is zero.
func (g GUID) IsZero() bool { return g == GUID{} }

// String renders the canonical lowercase 32-digit hex form.
func (g GUID) String() string { return hex.EncodeToString(g[:]) }
