package codecs

import (
	"github.com/mbase-io/mbase"
)

// The ROT family is self-inverse over its character domain; Decode never
// fails and detection stays deliberately low-confidence since rotated text
// is indistinguishable from plain text.

type rot13Codec struct{}

func (rot13Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "rot13",
		Aliases:     []string{"rot-13"},
		Alphabet:    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "ROT13 letter substitution (A-Z rotated by 13)",
	}
}

func (rot13Codec) Encode(src []byte) string {
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = rot13Byte(b)
	}
	return string(out)
}

func (rot13Codec) Decode(input string, _ mbase.Mode) ([]byte, error) {
	out := make([]byte, 0, len(input))
	for _, r := range input {
		out = append(out, rot13Byte(byte(r)))
	}
	return out, nil
}

func (c rot13Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (rot13Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("rot13")
	}
	cand := mbase.DetectCandidate{Codec: "rot13"}
	alpha := charRatio(input, func(r rune) bool {
		return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
	})
	if alpha > 0.5 {
		cand.Confidence = 0.2
		cand.Reasons = append(cand.Reasons, "contains alphabetic characters")
		cand.Warnings = append(cand.Warnings, "ROT13 is ambiguous without context")
	}
	return cand
}

func rot13Byte(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return (b-'A'+13)%26 + 'A'
	case b >= 'a' && b <= 'z':
		return (b-'a'+13)%26 + 'a'
	}
	return b
}

type rot47Codec struct{}

func (rot47Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "rot47",
		Aliases:     []string{"rot-47"},
		Alphabet:    "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "ROT47 extended ASCII substitution (!-~ rotated by 47)",
	}
}

func (rot47Codec) Encode(src []byte) string {
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = rot47Byte(b)
	}
	return string(out)
}

func (rot47Codec) Decode(input string, _ mbase.Mode) ([]byte, error) {
	out := make([]byte, 0, len(input))
	for _, r := range input {
		out = append(out, rot47Byte(byte(r)))
	}
	return out, nil
}

func (c rot47Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (rot47Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("rot47")
	}
	cand := mbase.DetectCandidate{Codec: "rot47"}
	printable := charRatio(input, func(r rune) bool { return r >= '!' && r <= '~' })
	if printable > 0.8 {
		cand.Confidence = 0.2
		cand.Reasons = append(cand.Reasons, "contains printable ASCII characters")
		cand.Warnings = append(cand.Warnings, "ROT47 is ambiguous without context")
	}
	return cand
}

func rot47Byte(b byte) byte {
	if b >= '!' && b <= '~' {
		return (b-'!'+47)%94 + '!'
	}
	return b
}
