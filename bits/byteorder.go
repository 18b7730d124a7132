package bits

import "unsafe"

// SwapBytes16 reverses the byte order of a 16-bit word (htons/ntohs on a
// little-endian host).
func SwapBytes16(v uint16) uint16 {
	return v<<8 | v>>8
}

// SwapBytes32 reverses the byte order of a 32-bit word (htonl/ntohl on a
// little-endian host).
func SwapBytes32(v uint32) uint32 {
	return v<<24 |
		(v&0x0000FF00)<<8 |
		(v&0x00FF0000)>>8 |
		v>>24
}

// IsLittleEndian reports the byte order of the host, using the classic
// write-a-word-read-a-byte trick.
func IsLittleEndian() bool {
	var word uint16 = 0x0001
	return *(*byte)(unsafe.Pointer(&word)) == 1
}

// ReadWord32LE assembles a 32-bit word from 4 little-endian bytes.
func ReadWord32LE(b []byte) uint32 {
	if len(b) < 4 {
		panic("bits: short buffer")
	}

	return uint32(b[0]) |
		uint32(b[1])<<8 |
		uint32(b[2])<<16 |
		uint32(b[3])<<24
}

// ReadWord32BE assembles a 32-bit word from 4 big-endian bytes.
func ReadWord32BE(b []byte) uint32 {
	if len(b) < 4 {
		panic("bits: short buffer")
	}

	return uint32(b[0])<<24 |
		uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])
}

// WriteWord32LE splits a 32-bit word into 4 little-endian bytes.
func WriteWord32LE(b []byte, v uint32) {
	if len(b) < 4 {
		panic("bits: short buffer")
	}

	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// WriteWord32BE splits a 32-bit word into 4 big-endian bytes.
func WriteWord32BE(b []byte, v uint32) {
	if len(b) < 4 {
		panic("bits: short buffer")
	}

	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
