package codecs

import (
	"strings"

	"github.com/mbase-io/mbase"
)

func emptyCandidate(name string) mbase.DetectCandidate {
	return mbase.DetectCandidate{Codec: name, Reasons: []string{"empty input"}}
}

// validateByDecode is the fallback validation strategy: decode and discard.
func validateByDecode(c mbase.Codec, input string, mode mbase.Mode) error {
	_, err := c.Decode(input, mode)
	return err
}

// charRatio returns the fraction of characters satisfying valid.
func charRatio(input string, valid func(rune) bool) float64 {
	total, hits := 0, 0
	for _, r := range input {
		total++
		if valid(r) {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

func inAlphabet(alphabet string) func(rune) bool {
	return func(r rune) bool { return strings.ContainsRune(alphabet, r) }
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

func isHexDigit(r rune) bool { return hexVal(r) >= 0 }

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}
