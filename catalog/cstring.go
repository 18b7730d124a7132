package catalog

import (
	"fmt"
	"io"

	"github.com/drillab/kata/cstring"
	"github.com/drillab/kata/drill"
)

func registerCString(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "cstring/strlen-strcpy",
		Topic:      "cstring",
		Difficulty: drill.Easy,
		Minutes:    10,
		Summary:    "Walk a NUL-terminated buffer; copy it terminator and all.",
		Run:        runStrlenStrcpy,
	})

	reg.Register(drill.Drill{
		Name:       "cstring/strncpy-pitfall",
		Topic:      "cstring",
		Difficulty: drill.Medium,
		Minutes:    15,
		Summary:    "strncpy pads short sources but silently truncates without a terminator.",
		Run:        runStrncpyPitfall,
	})

	reg.Register(drill.Drill{
		Name:       "cstring/strstr",
		Topic:      "cstring",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Substring search the quadratic way, with the empty-needle edge case.",
		Run:        runStrstr,
	})

	reg.Register(drill.Drill{
		Name:       "cstring/memmove-overlap",
		Topic:      "cstring",
		Difficulty: drill.Medium,
		Minutes:    15,
		Summary:    "memcpy corrupts overlapping copies; memmove picks a safe direction.",
		Run:        runMemmoveOverlap,
	})

	reg.Register(drill.Drill{
		Name:       "cstring/atoi-clamp",
		Topic:      "cstring",
		Difficulty: drill.Hard,
		Minutes:    25,
		Summary:    "Parse signed decimal with 32-bit saturation at INT_MAX/INT_MIN.",
		Run:        runAtoiClamp,
	})
}

func runStrlenStrcpy(w io.Writer) error {
	src := []byte("embedded\x00")
	n := cstring.Strlen(src)
	fmt.Fprintf(w, "Strlen(%q) = %d (terminator not counted)\n", "embedded", n)

	dst := make([]byte, len(src))
	cstring.Strcpy(dst, src)
	fmt.Fprintf(w, "Strcpy copied %q including the NUL\n", dst[:n])

	return firstErr(
		check(n == 8, "strlen: got %d, want 8", n),
		check(cstring.Strcmp(dst, src) == 0, "strcpy: copy differs from source"),
		check(dst[n] == 0, "strcpy: terminator missing at index %d", n),
	)
}

func runStrncpyPitfall(w io.Writer) error {
	// Short source: the remainder is NUL padding.
	dst := []byte("XXXXXX")
	cstring.Strncpy(dst, []byte("ab\x00"), 6)
	fmt.Fprintf(w, "short source padded: % x\n", dst)

	if err := firstErr(
		check(dst[2] == 0 && dst[5] == 0, "strncpy: expected NUL padding, got % x", dst),
	); err != nil {
		return err
	}

	// Long source: n bytes copied, NO terminator. The classic bug.
	dst = []byte("XXXX")
	cstring.Strncpy(dst, []byte("truncated\x00"), 4)
	fmt.Fprintf(w, "long source truncated without terminator: %q\n", dst)

	return check(string(dst) == "trun",
		"strncpy: truncation wrote %q, want %q", dst, "trun")
}

func runStrstr(w io.Writer) error {
	haystack := []byte("interrupt latency\x00")

	at := cstring.Strstr(haystack, []byte("latency\x00"))
	fmt.Fprintf(w, "found %q at offset %d\n", "latency", at)

	missing := cstring.Strstr(haystack, []byte("jitter\x00"))
	empty := cstring.Strstr(haystack, []byte("\x00"))

	return firstErr(
		check(at == 10, "strstr: got offset %d, want 10", at),
		check(missing == -1, "strstr: missing needle returned %d", missing),
		check(empty == 0, "strstr: empty needle must match at 0, got %d", empty),
	)
}

func runMemmoveOverlap(w io.Writer) error {
	// Shift right by two inside one buffer: dst overlaps ahead of src, so
	// a forward copy would read already-overwritten bytes.
	buf := []byte("abcdef")
	cstring.Memmove(buf[2:], buf[:4], 4)
	fmt.Fprintf(w, "shift right: %q\n", buf)

	if err := check(string(buf) == "ababcd",
		"memmove right shift: got %q, want %q", buf, "ababcd"); err != nil {
		return err
	}

	buf = []byte("abcdef")
	cstring.Memmove(buf[:4], buf[2:], 4)
	fmt.Fprintf(w, "shift left: %q\n", buf)

	return check(string(buf) == "cdefef",
		"memmove left shift: got %q, want %q", buf, "cdefef")
}

func runAtoiClamp(w io.Writer) error {
	cases := []struct {
		in   string
		want int32
	}{
		{"42", 42},
		{"   -17abc", -17},
		{"2147483647", 2147483647},
		{"2147483648", 2147483647},
		{"-2147483648", -2147483648},
		{"-2147483649", -2147483648},
		{"9999999999", 2147483647},
	}

	for _, c := range cases {
		got := cstring.Atoi(c.in)
		fmt.Fprintf(w, "Atoi(%q) = %d\n", c.in, got)

		if err := check(got == c.want,
			"atoi(%q): got %d, want %d", c.in, got, c.want); err != nil {
			return err
		}
	}

	return nil
}
