// Package gatt simulates a BLE GATT peripheral in memory: services,
// characteristics with property flags, attribute handles, and CCCD-gated
// notifications. There is no radio and no transport; the package models the
// attribute-table behavior a central would observe.
package gatt

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID is a 16-bit or 128-bit Bluetooth UUID, stored big-endian.
type UUID []byte

// baseUUID is the Bluetooth Base UUID, 0000xxxx-0000-1000-8000-00805F9B34FB.
// 16-bit UUIDs are shorthand for a slot in it.
var baseUUID = mustHex("0000000000001000800000805F9B34FB")

// UUID16 returns the 16-bit UUID for an assigned number, e.g. 0x1809 for
// Health Thermometer.
func UUID16(v uint16) UUID {
	return UUID{byte(v >> 8), byte(v)}
}

// Parse parses a 128-bit UUID in the canonical 8-4-4-4-12 hex form, or a
// bare 4-digit 16-bit UUID.
func Parse(s string) (UUID, error) {
	clean := strings.ReplaceAll(s, "-", "")

	switch len(clean) {
	case 4, 32:
	default:
		return nil, fmt.Errorf("gatt: malformed UUID %q", s)
	}

	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("gatt: malformed UUID %q: %w", s, err)
	}

	return UUID(b), nil
}

// MustParse is Parse for package-level UUID variables; it panics on error.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// Expand returns the full 128-bit form, substituting 16-bit UUIDs into the
// Bluetooth Base UUID.
func (u UUID) Expand() UUID {
	if len(u) != 2 {
		return u
	}

	full := make(UUID, 16)
	copy(full, baseUUID)
	full[2], full[3] = u[0], u[1]

	return full
}

// Equal reports whether two UUIDs identify the same attribute type,
// expanding 16-bit shorthands first.
func (u UUID) Equal(other UUID) bool {
	a, b := u.Expand(), other.Expand()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String renders the canonical textual form: 4 hex digits for 16-bit
// UUIDs, 8-4-4-4-12 for 128-bit.
func (u UUID) String() string {
	h := strings.ToUpper(hex.EncodeToString(u))

	if len(u) == 2 {
		return h
	}

	if len(u) != 16 {
		return h
	}

	return h[:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:]
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}
