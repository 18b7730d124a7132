// Package cstring reimplements the C string library over NUL-terminated
// byte buffers. The functions deliberately avoid the Go standard library so
// that their behavior can be compared against it in tests.
//
// The str* functions treat the first NUL byte as the string terminator. A
// buffer that carries no terminator is a caller bug and panics, which is the
// loud version of the undefined behavior the C originals would exhibit.
package cstring

// Strlen returns the number of bytes before the first NUL. A nil buffer has
// length 0.
func Strlen(s []byte) int {
	if s == nil {
		return 0
	}

	n := 0
	for {
		if n >= len(s) {
			panic("cstring: buffer is not NUL-terminated")
		}

		if s[n] == 0 {
			return n
		}

		n++
	}
}

// Strcpy copies src, including the terminator, into dst. dst must be large
// enough. It returns dst.
func Strcpy(dst, src []byte) []byte {
	n := Strlen(src)
	if len(dst) < n+1 {
		panic("cstring: destination too small")
	}

	for i := 0; i <= n; i++ {
		dst[i] = src[i]
	}

	return dst
}

// Strncpy copies at most n bytes of src into dst. If src is shorter than n,
// the remainder of dst is padded with NULs. If src is longer, dst is NOT
// terminated, exactly like the C function.
func Strncpy(dst, src []byte, n int) []byte {
	if len(dst) < n {
		panic("cstring: destination too small")
	}

	i := 0
	for ; i < n && src[i] != 0; i++ {
		dst[i] = src[i]
	}

	for ; i < n; i++ {
		dst[i] = 0
	}

	return dst
}

// Strcmp compares two strings byte-wise as unsigned values. It returns a
// negative number, zero, or a positive number.
func Strcmp(a, b []byte) int {
	for i := 0; ; i++ {
		boundsCheck(a, i)
		boundsCheck(b, i)

		if a[i] != b[i] || a[i] == 0 {
			return int(a[i]) - int(b[i])
		}
	}
}

// Strncmp compares at most n bytes.
func Strncmp(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		boundsCheck(a, i)
		boundsCheck(b, i)

		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}

		if a[i] == 0 {
			return 0
		}
	}

	return 0
}

// Strcat appends src to dst, overwriting dst's terminator. dst must have
// room for the combined string plus the terminator.
func Strcat(dst, src []byte) []byte {
	dn := Strlen(dst)
	sn := Strlen(src)

	if len(dst) < dn+sn+1 {
		panic("cstring: destination too small")
	}

	for i := 0; i <= sn; i++ {
		dst[dn+i] = src[i]
	}

	return dst
}

// Strncat appends at most n bytes of src to dst and, unlike Strncpy, always
// writes a terminator. dst must have room for up to n extra bytes plus the
// terminator.
func Strncat(dst, src []byte, n int) []byte {
	dn := Strlen(dst)

	sn := Strlen(src)
	if sn > n {
		sn = n
	}

	if len(dst) < dn+sn+1 {
		panic("cstring: destination too small")
	}

	for i := 0; i < sn; i++ {
		dst[dn+i] = src[i]
	}
	dst[dn+sn] = 0

	return dst
}

// Strchr returns the index of the first occurrence of c, or -1. Like the C
// function, it can find the terminator itself when c is 0.
func Strchr(s []byte, c byte) int {
	n := Strlen(s)
	for i := 0; i <= n; i++ {
		if s[i] == c {
			return i
		}
	}

	return -1
}

// Strrchr returns the index of the last occurrence of c, or -1.
func Strrchr(s []byte, c byte) int {
	n := Strlen(s)
	for i := n; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}

	return -1
}

// Strstr returns the index of the first occurrence of needle in haystack,
// or -1. An empty needle matches at index 0.
func Strstr(haystack, needle []byte) int {
	hn := Strlen(haystack)
	nn := Strlen(needle)

	if nn == 0 {
		return 0
	}

	for i := 0; i+nn <= hn; i++ {
		j := 0
		for j < nn && haystack[i+j] == needle[j] {
			j++
		}

		if j == nn {
			return i
		}
	}

	return -1
}

func boundsCheck(s []byte, i int) {
	if i >= len(s) {
		panic("cstring: buffer is not NUL-terminated")
	}
}
