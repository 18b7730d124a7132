// Package bits collects the bit-manipulation katas: single-bit operations,
// counting, reversal, rotation, register bitfield extraction, and the
// byte-order helpers that show up in embedded interviews.
package bits

// IsPowerOfTwo reports whether n is a positive power of two. Zero is not a
// power of two.
func IsPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

// CountSetBits counts one-bits using Kernighan's method: each n &= n-1
// clears the lowest set bit, so the loop runs once per set bit.
func CountSetBits(n uint32) int {
	count := 0
	for n != 0 {
		n &= n - 1
		count++
	}

	return count
}

// SwapXOR exchanges two values without a temporary. Swapping a value with
// itself through aliased pointers would zero it in C; Go's tuple assignment
// inside makes the same three XOR steps explicit.
func SwapXOR(a, b *uint32) {
	if a == b {
		return
	}

	*a ^= *b
	*b ^= *a
	*a ^= *b
}

// SingleNonRepeating returns the one value that appears an odd number of
// times when every other value appears twice. XOR of the whole slice cancels
// the pairs.
func SingleNonRepeating(values []int) int {
	result := 0
	for _, v := range values {
		result ^= v
	}

	return result
}

// Set returns n with bit pos set.
func Set(n uint32, pos uint) uint32 { return n | 1<<pos }

// Clear returns n with bit pos cleared.
func Clear(n uint32, pos uint) uint32 { return n &^ (1 << pos) }

// Toggle returns n with bit pos flipped.
func Toggle(n uint32, pos uint) uint32 { return n ^ 1<<pos }

// Test reports whether bit pos of n is set.
func Test(n uint32, pos uint) bool { return n&(1<<pos) != 0 }

// Update returns n with bit pos forced to the given value.
func Update(n uint32, pos uint, bit bool) uint32 {
	n &^= 1 << pos
	if bit {
		n |= 1 << pos
	}

	return n
}

// Reverse32 mirrors the 32 bits of n.
func Reverse32(n uint32) uint32 {
	var result uint32
	for i := 0; i < 32; i++ {
		result <<= 1
		result |= n & 1
		n >>= 1
	}

	return result
}

// RotateLeft32 rotates n left by k bits.
func RotateLeft32(n uint32, k uint) uint32 {
	k %= 32
	if k == 0 {
		return n
	}

	return n<<k | n>>(32-k)
}

// RotateRight32 rotates n right by k bits.
func RotateRight32(n uint32, k uint) uint32 {
	k %= 32
	if k == 0 {
		return n
	}

	return n>>k | n<<(32-k)
}

// ExtractField reads width bits of reg starting at bit pos, the classic
// (reg >> pos) & mask register idiom.
func ExtractField(reg uint32, pos, width uint) uint32 {
	if width == 0 || pos+width > 32 {
		panic("bits: field out of range")
	}

	mask := uint32(1)<<width - 1
	if width == 32 {
		mask = 0xFFFFFFFF
	}

	return (reg >> pos) & mask
}

// InsertField writes value into width bits of reg starting at bit pos and
// returns the new register value. Bits of value above the field width are
// ignored.
func InsertField(reg, value uint32, pos, width uint) uint32 {
	if width == 0 || pos+width > 32 {
		panic("bits: field out of range")
	}

	mask := uint32(1)<<width - 1
	if width == 32 {
		mask = 0xFFFFFFFF
	}

	return (reg &^ (mask << pos)) | (value&mask)<<pos
}

// MergeBytes combines a high and a low byte into a 16-bit word.
func MergeBytes(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Fibonacci returns the n-th Fibonacci number, F(0)=0, F(1)=1, iteratively.
func Fibonacci(n int) uint64 {
	if n < 0 {
		panic("bits: negative index")
	}

	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a
}

// FibonacciMemo is the recursive Fibonacci with memoization, the shape the
// interview usually asks for after the naive exponential version.
func FibonacciMemo(n int) uint64 {
	if n < 0 {
		panic("bits: negative index")
	}

	memo := make(map[int]uint64, n)

	var fib func(int) uint64
	fib = func(n int) uint64 {
		if n < 2 {
			return uint64(n)
		}

		if v, ok := memo[n]; ok {
			return v
		}

		v := fib(n-1) + fib(n-2)
		memo[n] = v

		return v
	}

	return fib(n)
}

// Factorial returns n! for n >= 0.
func Factorial(n int) uint64 {
	if n < 0 {
		panic("bits: negative index")
	}

	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}

	return result
}
