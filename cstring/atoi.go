package cstring

const (
	intMax = 2147483647
	intMin = -2147483648
)

// Atoi converts the leading integer in s to an int32, following the C
// library contract: skip leading whitespace, accept an optional sign,
// consume digits until the first non-digit, and clamp to INT_MAX/INT_MIN on
// overflow. A nil or non-numeric string yields 0.
func Atoi(s string) int32 {
	i := 0

	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' ||
		s[i] == '\v' || s[i] == '\f' || s[i] == '\r') {
		i++
	}

	sign := int32(1)
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	var result int32
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		digit := int32(s[i] - '0')

		// Detect overflow before it happens. INT_MAX/10 == 214748364; the
		// last digit may be 7 for positive values and 8 for INT_MIN.
		if sign == 1 && (result > intMax/10 ||
			(result == intMax/10 && digit > 7)) {
			return intMax
		}

		if sign == -1 && (result > intMax/10 ||
			(result == intMax/10 && digit >= 8)) {
			return intMin
		}

		result = result*10 + digit
	}

	return sign * result
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Itoa converts v to its string form in the given base (2 through 36).
// Negative values get a leading minus sign in base 10 only, matching the
// usual C implementation. INT_MIN is handled without overflowing.
func Itoa(v int32, base int) string {
	if base < 2 || base > 36 {
		panic("cstring: base out of range")
	}

	if v == 0 {
		return "0"
	}

	// Accumulate in an int64 magnitude so that -INT_MIN does not overflow.
	n := int64(v)
	negative := n < 0 && base == 10
	if n < 0 {
		if base == 10 {
			n = -n
		} else {
			// Non-decimal bases print the two's-complement bit pattern.
			n = int64(uint32(v))
		}
	}

	var buf [34]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%int64(base)]
		n /= int64(base)
	}

	if negative {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}
