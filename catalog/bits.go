package catalog

import (
	"fmt"
	"io"

	"github.com/drillab/kata/bits"
	"github.com/drillab/kata/drill"
)

func registerBits(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "bits/power-of-two",
		Topic:      "bits",
		Difficulty: drill.Easy,
		Minutes:    5,
		Summary:    "n & (n-1) clears the lowest set bit; powers of two have only one.",
		Run:        runPowerOfTwo,
	})

	reg.Register(drill.Drill{
		Name:       "bits/register-field",
		Topic:      "bits",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Extract and insert a bit field of a control register.",
		Run:        runRegisterField,
	})

	reg.Register(drill.Drill{
		Name:       "bits/byte-order",
		Topic:      "bits",
		Difficulty: drill.Medium,
		Minutes:    15,
		Summary:    "Swap byte order and read a word both ways from a raw buffer.",
		Run:        runByteOrder,
	})

	reg.Register(drill.Drill{
		Name:       "bits/single-non-repeating",
		Topic:      "bits",
		Difficulty: drill.Easy,
		Minutes:    10,
		Summary:    "XOR of pairs cancels; the lone value survives.",
		Run:        runSingleNonRepeating,
	})
}

func runPowerOfTwo(w io.Writer) error {
	for _, n := range []uint32{1, 2, 64, 1 << 31} {
		fmt.Fprintf(w, "%d is a power of two: %08b & %08b == 0\n", n, n, n-1)

		if err := check(bits.IsPowerOfTwo(n), "%d should be a power of two", n); err != nil {
			return err
		}
	}

	for _, n := range []uint32{0, 3, 96} {
		if err := check(!bits.IsPowerOfTwo(n), "%d is not a power of two", n); err != nil {
			return err
		}
	}

	popcount := bits.CountSetBits(0xF0F0)
	fmt.Fprintf(w, "CountSetBits(0xF0F0) = %d\n", popcount)

	return check(popcount == 8, "popcount: got %d, want 8", popcount)
}

func runRegisterField(w io.Writer) error {
	// A UART control register: bits 4..6 hold the baud divisor select.
	reg := uint32(0x0000_00A5)

	field := bits.ExtractField(reg, 4, 3)
	fmt.Fprintf(w, "extract bits 4..6 of %#08x: %#x\n", reg, field)

	updated := bits.InsertField(reg, 0b011, 4, 3)
	fmt.Fprintf(w, "insert 0b011 at bits 4..6: %#08x\n", updated)

	return firstErr(
		check(field == 0b010, "extract: got %#x, want 0x2", field),
		check(updated == 0x0000_00B5, "insert: got %#08x, want 0xb5", updated),
		check(bits.ExtractField(updated, 4, 3) == 0b011,
			"round trip: inserted field not read back"),
	)
}

func runByteOrder(w io.Writer) error {
	swapped := bits.SwapBytes32(0x12345678)
	fmt.Fprintf(w, "SwapBytes32(0x12345678) = %#08x\n", swapped)

	raw := []byte{0x78, 0x56, 0x34, 0x12}
	le := bits.ReadWord32LE(raw)
	be := bits.ReadWord32BE(raw)
	fmt.Fprintf(w, "raw % x reads as %#08x (LE) and %#08x (BE)\n", raw, le, be)

	fmt.Fprintf(w, "this host is little-endian: %v\n", bits.IsLittleEndian())

	return firstErr(
		check(swapped == 0x78563412, "swap: got %#08x", swapped),
		check(le == 0x12345678, "LE read: got %#08x", le),
		check(be == 0x78563412, "BE read: got %#08x", be),
	)
}

func runSingleNonRepeating(w io.Writer) error {
	values := []int{7, 3, 5, 3, 7}

	single := bits.SingleNonRepeating(values)
	fmt.Fprintf(w, "the value without a pair in %v is %d\n", values, single)

	return check(single == 5, "got %d, want 5", single)
}
