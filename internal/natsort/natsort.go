// Package natsort implements natural-order string comparison.
//
// Strings are tokenized into maximal runs of ASCII digits and non-digits.
// Digit runs compare by numeric value ("13" sorts after "2"); text runs
// compare by ASCII transliteration with case folded away, so "bart" and
// "BART" sort adjacently and "métro" sorts between "meter" and
// "microkernel" rather than after every ASCII title.
//
// The comparison is a strict weak order, not a strict total order: strings
// that differ only in case, diacritics, or leading zeros compare equal.
// Callers that need a total order must break ties on a unique secondary
// key.
package natsort

import (
	"strings"

	anyascii "github.com/anyascii/go"
	"golang.org/x/text/unicode/norm"
)

// Compare returns -1, 0, or 1 ordering a before, equal to, or after b
// under natural order.
func Compare(a, b string) int {
	// Normalize at the boundary so composed and decomposed forms of the
	// same text compare identically.
	a = norm.NFC.String(a)
	b = norm.NFC.String(b)

	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		aRun, aDigits, aNext := nextRun(a, ai)
		bRun, bDigits, bNext := nextRun(b, bi)

		var ord int
		if aDigits && bDigits {
			ord = compareNumeric(aRun, bRun)
		} else {
			// Covers text/text and the mismatched digit/text case; folded
			// byte order puts digits before letters.
			ord = strings.Compare(foldRun(aRun), foldRun(bRun))
		}
		if ord != 0 {
			return ord
		}
		ai, bi = aNext, bNext
	}

	// One string is a prefix of the other at run granularity: the shorter
	// sorts first.
	switch {
	case ai < len(a):
		return 1
	case bi < len(b):
		return -1
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// nextRun returns the maximal run starting at i, whether it is a digit
// run, and the offset just past it.
//
// Runs are delimited at the byte level: ASCII digit bytes never occur
// inside a multi-byte UTF-8 sequence, so this cannot split a rune.
func nextRun(s string, i int) (run string, digits bool, next int) {
	digits = isDigit(s[i])
	j := i + 1
	for j < len(s) && isDigit(s[j]) == digits {
		j++
	}
	return s[i:j], digits, j
}

// compareNumeric compares two digit runs by numeric value. Runs may be
// arbitrarily long, so the comparison never materializes an integer:
// after stripping leading zeros, a longer run is a larger number and
// equal-length runs compare bytewise.
//
// Runs that differ only in leading zeros compare equal; the caller's
// tie-break decides.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// foldRun maps a text run to its comparison key: ASCII transliteration
// (å → a, Ö → O, μ → m) followed by case folding. Transliteration uses
// the same any_ascii tables across implementations, which keeps ordering
// stable across platforms and locales.
func foldRun(s string) string {
	return strings.ToLower(anyascii.Transliterate(s))
}
