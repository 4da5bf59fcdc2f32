package codecs

import (
	"github.com/mbase-io/mbase"
)

// atbashCodec mirrors the alphabet: A<->Z, B<->Y and so on, for both cases.
// Non-letter bytes pass through untouched, so the round trip holds only for
// text in its letter domain.
type atbashCodec struct{}

func (atbashCodec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "atbash",
		Alphabet:    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Atbash cipher (A↔Z, B↔Y, etc.)",
	}
}

func (atbashCodec) Encode(src []byte) string {
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = atbashByte(b)
	}
	return string(out)
}

func (atbashCodec) Decode(input string, _ mbase.Mode) ([]byte, error) {
	out := make([]byte, 0, len(input))
	for _, r := range input {
		out = append(out, atbashByte(byte(r)))
	}
	return out, nil
}

func (c atbashCodec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (atbashCodec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("atbash")
	}
	cand := mbase.DetectCandidate{Codec: "atbash"}
	alpha := charRatio(input, func(r rune) bool {
		return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
	})
	if alpha > 0.5 {
		cand.Confidence = 0.15
		cand.Reasons = append(cand.Reasons, "contains alphabetic characters")
		cand.Warnings = append(cand.Warnings, "Atbash is ambiguous without context")
	}
	return cand
}

func atbashByte(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return 'Z' - (b - 'A')
	case b >= 'a' && b <= 'z':
		return 'z' - (b - 'a')
	}
	return b
}
