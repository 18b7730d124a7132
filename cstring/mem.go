package cstring

// Memset fills the first n bytes of dst with c and returns dst.
func Memset(dst []byte, c byte, n int) []byte {
	if len(dst) < n {
		panic("cstring: destination too small")
	}

	for i := 0; i < n; i++ {
		dst[i] = c
	}

	return dst
}

// Memcpy copies n bytes from src to dst. The regions must not overlap; use
// Memmove when they might.
func Memcpy(dst, src []byte, n int) []byte {
	if len(dst) < n || len(src) < n {
		panic("cstring: buffer too small")
	}

	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}

	return dst
}

// Memmove copies n bytes from src to dst and is safe for overlapping
// regions. When dst starts inside src, copying runs backward so that source
// bytes are read before they are overwritten.
func Memmove(dst, src []byte, n int) []byte {
	if len(dst) < n || len(src) < n {
		panic("cstring: buffer too small")
	}

	if n == 0 {
		return dst
	}

	if overlapsAhead(dst, src, n) {
		for i := n - 1; i >= 0; i-- {
			dst[i] = src[i]
		}

		return dst
	}

	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}

	return dst
}

// Memcmp compares the first n bytes of a and b as unsigned values.
func Memcmp(a, b []byte, n int) int {
	if len(a) < n || len(b) < n {
		panic("cstring: buffer too small")
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}

	return 0
}

// overlapsAhead reports whether dst[0:n] starts strictly inside src[0:n],
// the case where a forward copy would clobber unread source bytes.
func overlapsAhead(dst, src []byte, n int) bool {
	if n == 0 {
		return false
	}

	// Same backing array iff writing to one is visible through the other.
	// Comparing the addresses of the first elements is enough here because
	// both slices are re-sliced from the same buffer in the overlap case.
	for i := 1; i < n; i++ {
		if &dst[0] == &src[i] {
			return true
		}
	}

	return false
}
