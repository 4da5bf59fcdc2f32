package codecs

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mbase-io/mbase"
)

type base16Codec struct {
	meta  mbase.Meta
	upper bool
}

var base16Lower = base16Codec{
	meta: mbase.Meta{
		Name:          "base16lower",
		Aliases:       []string{"hex", "base16", "hexlower"},
		Alphabet:      "0123456789abcdef",
		MultibaseCode: 'f',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseLower,
		Description:   "RFC4648 Base16 lowercase (hex)",
	},
}

var base16Upper = base16Codec{
	meta: mbase.Meta{
		Name:          "base16upper",
		Aliases:       []string{"hexupper", "HEX"},
		Alphabet:      "0123456789ABCDEF",
		MultibaseCode: 'F',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseUpper,
		Description:   "RFC4648 Base16 uppercase",
	},
	upper: true,
}

func (c base16Codec) Meta() mbase.Meta { return c.meta }

func (c base16Codec) Encode(src []byte) string {
	s := hex.EncodeToString(src)
	if c.upper {
		return strings.ToUpper(s)
	}
	return s
}

func (c base16Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	if mode == mbase.Lenient {
		cleaned = strings.TrimPrefix(cleaned, "0x")
	}
	if len(cleaned)%2 != 0 {
		return nil, &mbase.InvalidLengthError{
			Constraint: mbase.LengthConstraint{MultipleOf: 2},
			Actual:     len(cleaned),
		}
	}
	if mode == mbase.Strict {
		// hex.DecodeString is case-agnostic; enforce the declared case here.
		if err := mbase.ValidateAlphabetPadding(cleaned, c.meta.Alphabet, false); err != nil {
			return nil, err
		}
	}
	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, &mbase.InvalidInputError{Message: err.Error()}
	}
	return out, nil
}

func (c base16Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (c base16Codec) DetectScore(input string) mbase.DetectCandidate {
	name := c.meta.Name
	if input == "" {
		return emptyCandidate(name)
	}
	cand := mbase.DetectCandidate{Codec: name}
	if code := c.meta.MultibaseCode; strings.HasPrefix(input, string(code)) {
		cand.Confidence = mbase.MultibaseMatch
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("multibase prefix '%c' detected", code))
	}
	ratio := charRatio(input, isHexDigit)
	switch {
	case ratio == 1:
		cand.Confidence = max(cand.Confidence, mbase.AlphabetMatch)
		cand.Reasons = append(cand.Reasons, "all characters are hex digits")
	case ratio >= 0.9:
		cand.Confidence = max(cand.Confidence, mbase.WeakMatch)
		cand.Warnings = append(cand.Warnings, fmt.Sprintf("%.1f%% non-hex characters", (1-ratio)*100))
	}
	if utf8.RuneCountInString(input)%2 != 0 {
		cand.Confidence *= 0.5
		cand.Warnings = append(cand.Warnings, "odd length")
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}
