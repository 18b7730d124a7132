// Package textops collects the string katas. Everything operates on bytes,
// like the C originals; multi-byte runes are out of scope for this corpus.
package textops

import "github.com/drillab/kata/cstring"

// Reverse returns s reversed byte-wise.
func Reverse(s string) string {
	b := []byte(s)
	for lo, hi := 0, len(b)-1; lo < hi; lo, hi = lo+1, hi-1 {
		b[lo], b[hi] = b[hi], b[lo]
	}

	return string(b)
}

// IsPalindrome reports whether s reads the same forward and backward,
// comparing raw bytes.
func IsPalindrome(s string) bool {
	for lo, hi := 0, len(s)-1; lo < hi; lo, hi = lo+1, hi-1 {
		if s[lo] != s[hi] {
			return false
		}
	}

	return true
}

// IsPalindromeClean is the interviewer's follow-up: ignore non-alphanumeric
// bytes and case.
func IsPalindromeClean(s string) bool {
	lo, hi := 0, len(s)-1

	for lo < hi {
		if !isAlnum(s[lo]) {
			lo++
			continue
		}

		if !isAlnum(s[hi]) {
			hi--
			continue
		}

		if toLower(s[lo]) != toLower(s[hi]) {
			return false
		}

		lo++
		hi--
	}

	return true
}

// AreAnagrams reports whether a and b contain the same bytes with the same
// multiplicities, via a 256-bucket count.
func AreAnagrams(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	var counts [256]int
	for i := 0; i < len(a); i++ {
		counts[a[i]]++
		counts[b[i]]--
	}

	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

// CharFrequency returns the per-byte occurrence counts of s.
func CharFrequency(s string) [256]int {
	var counts [256]int
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}

	return counts
}

// RemoveDuplicates keeps the first occurrence of each byte, preserving
// order.
func RemoveDuplicates(s string) string {
	var seen [256]bool
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			out = append(out, s[i])
		}
	}

	return string(out)
}

// FirstNonRepeating returns the index of the first byte that occurs exactly
// once, or -1.
func FirstNonRepeating(s string) int {
	counts := CharFrequency(s)

	for i := 0; i < len(s); i++ {
		if counts[s[i]] == 1 {
			return i
		}
	}

	return -1
}

// IsRotation reports whether b is a rotation of a, using the concatenation
// trick: b rotates a iff b is a substring of a+a.
func IsRotation(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	if len(a) == 0 {
		return true
	}

	doubled := append(append([]byte(a), a...), 0)

	return cstring.Strstr(doubled, append([]byte(b), 0)) >= 0
}

// IndexOf returns the index of the first occurrence of needle in haystack
// with strstr semantics: an empty needle matches at 0, no match is -1.
func IndexOf(haystack, needle string) int {
	return cstring.Strstr(
		append([]byte(haystack), 0),
		append([]byte(needle), 0),
	)
}

// LongestCommonPrefix returns the longest prefix shared by all strings. An
// empty input yields "".
func LongestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	prefix := strs[0]
	for _, s := range strs[1:] {
		n := 0
		for n < len(prefix) && n < len(s) && prefix[n] == s[n] {
			n++
		}

		prefix = prefix[:n]
		if prefix == "" {
			return ""
		}
	}

	return prefix
}

// CountWords counts whitespace-separated words with a two-state machine.
func CountWords(s string) int {
	count := 0
	inWord := false

	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}

	return count
}

// CountAndSay returns the n-th term of the count-and-say sequence, n >= 1.
// Term 1 is "1", each later term reads the previous one aloud.
func CountAndSay(n int) string {
	if n < 1 {
		panic("textops: CountAndSay needs n >= 1")
	}

	term := "1"
	for i := 1; i < n; i++ {
		var next []byte

		for j := 0; j < len(term); {
			run := j
			for run < len(term) && term[run] == term[j] {
				run++
			}

			next = append(next, byte('0'+run-j), term[j])
			j = run
		}

		term = string(next)
	}

	return term
}

// LongestPalindromicSubstring returns the longest palindromic substring,
// expanding around each center. Ties go to the leftmost.
func LongestPalindromicSubstring(s string) string {
	if len(s) < 2 {
		return s
	}

	bestLo, bestLen := 0, 1

	expand := func(lo, hi int) {
		for lo >= 0 && hi < len(s) && s[lo] == s[hi] {
			lo--
			hi++
		}

		if hi-lo-1 > bestLen {
			bestLo = lo + 1
			bestLen = hi - lo - 1
		}
	}

	for center := 0; center < len(s); center++ {
		expand(center, center)
		expand(center, center+1)
	}

	return s[bestLo : bestLo+bestLen]
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' ||
		c == '\v' || c == '\f'
}
