package codecs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbase-io/mbase"
)

// a1z26Codec maps letters to their alphabet position, joined with dashes:
// A=1 ... Z=26, with 0 standing in for a space. Characters outside that
// domain are dropped on encode, so the round trip holds only for letters
// and spaces.
type a1z26Codec struct{}

func (a1z26Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "a1z26",
		Aliases:     []string{"letternum", "alphanumeric"},
		Alphabet:    "0123456789-",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Letter position encoding (A=1, B=2, ..., Z=26)",
	}
}

func (a1z26Codec) Encode(src []byte) string {
	text := strings.ToUpper(string(src))
	parts := make([]string, 0, len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			parts = append(parts, strconv.Itoa(int(r-'A')+1))
		case r == ' ':
			parts = append(parts, "0")
		}
	}
	return strings.Join(parts, "-")
}

func (a1z26Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	var out []byte
	for _, part := range strings.Split(cleaned, "-") {
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("invalid number: %s", part)}
		}
		switch {
		case n == 0:
			out = append(out, ' ')
		case n <= 26:
			out = append(out, byte('A'+n-1))
		default:
			return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("number out of range (1-26): %d", n)}
		}
	}
	return out, nil
}

func (c a1z26Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (a1z26Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("a1z26")
	}
	cand := mbase.DetectCandidate{Codec: "a1z26"}
	dashes := strings.Count(input, "-")
	digits := 0
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if dashes > 0 && digits > 0 {
		parts := strings.Split(input, "-")
		valid := 0
		for _, p := range parts {
			if n, err := strconv.ParseUint(p, 10, 8); err == nil && n <= 26 {
				valid++
			}
		}
		switch {
		case valid == len(parts):
			cand.Confidence = 0.7
			cand.Reasons = append(cand.Reasons, fmt.Sprintf("all %d numbers in range 0-26", len(parts)))
		case valid > len(parts)/2:
			cand.Confidence = 0.4
			cand.Reasons = append(cand.Reasons, fmt.Sprintf("%d/%d numbers valid", valid, len(parts)))
		}
	}
	return cand
}

// rot18Codec is ROT13 for letters combined with ROT5 for digits.
type rot18Codec struct{}

func (rot18Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "rot18",
		Aliases:     []string{"rot-18"},
		Alphabet:    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "ROT13 for letters + ROT5 for digits",
	}
}

func (rot18Codec) Encode(src []byte) string {
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = rot18Byte(b)
	}
	return string(out)
}

func (rot18Codec) Decode(input string, _ mbase.Mode) ([]byte, error) {
	out := make([]byte, 0, len(input))
	for _, r := range input {
		out = append(out, rot18Byte(byte(r)))
	}
	return out, nil
}

func (c rot18Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (rot18Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("rot18")
	}
	cand := mbase.DetectCandidate{Codec: "rot18"}
	if charRatio(input, isAlnum) > 0.5 {
		cand.Confidence = 0.2
		cand.Reasons = append(cand.Reasons, "contains alphanumeric characters")
		cand.Warnings = append(cand.Warnings, "ROT18 is ambiguous without context")
	}
	return cand
}

func rot18Byte(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return (b-'A'+13)%26 + 'A'
	case b >= 'a' && b <= 'z':
		return (b-'a'+13)%26 + 'a'
	case b >= '0' && b <= '9':
		return (b-'0'+5)%10 + '0'
	}
	return b
}
