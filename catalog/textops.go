package catalog

import (
	"fmt"
	"io"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/textops"
)

func registerTextOps(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "textops/palindrome",
		Topic:      "textops",
		Difficulty: drill.Easy,
		Minutes:    10,
		Summary:    "Palindrome check, strict and ignoring case and punctuation.",
		Run:        runPalindrome,
	})

	reg.Register(drill.Drill{
		Name:       "textops/anagrams",
		Topic:      "textops",
		Difficulty: drill.Easy,
		Minutes:    10,
		Summary:    "Anagram detection with a 256-bucket frequency count.",
		Run:        runAnagrams,
	})

	reg.Register(drill.Drill{
		Name:       "textops/rotation",
		Topic:      "textops",
		Difficulty: drill.Medium,
		Minutes:    15,
		Summary:    "b is a rotation of a iff b occurs in a+a.",
		Run:        runRotation,
	})

	reg.Register(drill.Drill{
		Name:       "textops/count-and-say",
		Topic:      "textops",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Run-length describe the previous term, n times.",
		Run:        runCountAndSay,
	})

	reg.Register(drill.Drill{
		Name:       "textops/longest-palindrome",
		Topic:      "textops",
		Difficulty: drill.Hard,
		Minutes:    25,
		Summary:    "Longest palindromic substring by expanding around each center.",
		Run:        runLongestPalindrome,
	})
}

func runPalindrome(w io.Writer) error {
	strict := textops.IsPalindrome("racecar")
	fmt.Fprintf(w, "racecar strict: %v\n", strict)

	clean := textops.IsPalindromeClean("A man, a plan, a canal: Panama")
	fmt.Fprintf(w, "Panama sentence ignoring punctuation: %v\n", clean)

	return firstErr(
		check(strict, "racecar is a palindrome"),
		check(clean, "the Panama sentence is a clean palindrome"),
		check(!textops.IsPalindrome("race a car"), "race a car is not"),
	)
}

func runAnagrams(w io.Writer) error {
	yes := textops.AreAnagrams("listen", "silent")
	no := textops.AreAnagrams("listen", "siren")
	fmt.Fprintf(w, "listen/silent: %v, listen/siren: %v\n", yes, no)

	first := textops.FirstNonRepeating("swiss")
	fmt.Fprintf(w, "first non-repeating byte of swiss is at index %d\n", first)

	return firstErr(
		check(yes && !no, "anagram answers wrong"),
		check(first == 1, "first non-repeating: got %d, want 1", first),
	)
}

func runRotation(w io.Writer) error {
	yes := textops.IsRotation("waterbottle", "erbottlewat")
	no := textops.IsRotation("waterbottle", "erbottletaw")
	fmt.Fprintf(w, "erbottlewat rotation: %v, erbottletaw rotation: %v\n", yes, no)

	return firstErr(
		check(yes, "erbottlewat is a rotation of waterbottle"),
		check(!no, "erbottletaw is not a rotation"),
		check(textops.IsRotation("", ""), "empty rotates to empty"),
	)
}

func runCountAndSay(w io.Writer) error {
	for n := 1; n <= 5; n++ {
		fmt.Fprintf(w, "term %d: %s\n", n, textops.CountAndSay(n))
	}

	got := textops.CountAndSay(5)

	return check(got == "111221", "term 5: got %s, want 111221", got)
}

func runLongestPalindrome(w io.Writer) error {
	got := textops.LongestPalindromicSubstring("forgeeksskeegfor")
	fmt.Fprintf(w, "longest palindrome: %q\n", got)

	even := textops.LongestPalindromicSubstring("abba")

	return firstErr(
		check(got == "geeksskeeg", "got %q, want geeksskeeg", got),
		check(even == "abba", "even-length center: got %q", even),
	)
}
