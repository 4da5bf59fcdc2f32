package codecs

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/mbase-io/mbase"
)

const (
	base32AlphaLower    = "abcdefghijklmnopqrstuvwxyz234567"
	base32AlphaUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base32HexAlphaLower = "0123456789abcdefghijklmnopqrstuv"
	base32HexAlphaUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

var (
	b32StdLowerRaw = base32.NewEncoding(base32AlphaLower).WithPadding(base32.NoPadding)
	b32StdLowerPad = base32.NewEncoding(base32AlphaLower)
	b32StdUpperRaw = base32.NewEncoding(base32AlphaUpper).WithPadding(base32.NoPadding)
	b32StdUpperPad = base32.NewEncoding(base32AlphaUpper)
	b32HexLowerRaw = base32.NewEncoding(base32HexAlphaLower).WithPadding(base32.NoPadding)
	b32HexLowerPad = base32.NewEncoding(base32HexAlphaLower)
	b32HexUpperRaw = base32.NewEncoding(base32HexAlphaUpper).WithPadding(base32.NoPadding)
	b32HexUpperPad = base32.NewEncoding(base32HexAlphaUpper)
)

// base32Codec covers the eight RFC 4648 Base32 variants: standard and hex
// alphabets, upper and lower case, padded and unpadded.
type base32Codec struct {
	meta mbase.Meta
	raw  *base32.Encoding
	pad  *base32.Encoding
	pads bool
}

var b32Lower = base32Codec{
	meta: mbase.Meta{
		Name:          "base32lower",
		Aliases:       []string{"base32", "b32"},
		Alphabet:      base32AlphaLower,
		MultibaseCode: 'b',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseLower,
		Description:   "RFC4648 Base32 lowercase without padding",
	},
	raw: b32StdLowerRaw, pad: b32StdLowerPad,
}

var b32Upper = base32Codec{
	meta: mbase.Meta{
		Name:          "base32upper",
		Aliases:       []string{"B32"},
		Alphabet:      base32AlphaUpper,
		MultibaseCode: 'B',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseUpper,
		Description:   "RFC4648 Base32 uppercase without padding",
	},
	raw: b32StdUpperRaw, pad: b32StdUpperPad,
}

var b32PadLower = base32Codec{
	meta: mbase.Meta{
		Name:          "base32padlower",
		Aliases:       []string{"base32pad", "b32pad"},
		Alphabet:      base32AlphaLower,
		MultibaseCode: 'c',
		Padding:       mbase.PaddingRequired,
		Case:          mbase.CaseLower,
		Description:   "RFC4648 Base32 lowercase with padding",
	},
	raw: b32StdLowerRaw, pad: b32StdLowerPad, pads: true,
}

var b32PadUpper = base32Codec{
	meta: mbase.Meta{
		Name:          "base32padupper",
		Aliases:       []string{"B32PAD"},
		Alphabet:      base32AlphaUpper,
		MultibaseCode: 'C',
		Padding:       mbase.PaddingRequired,
		Case:          mbase.CaseUpper,
		Description:   "RFC4648 Base32 uppercase with padding",
	},
	raw: b32StdUpperRaw, pad: b32StdUpperPad, pads: true,
}

var b32HexLower = base32Codec{
	meta: mbase.Meta{
		Name:          "base32hexlower",
		Aliases:       []string{"base32hex", "b32hex"},
		Alphabet:      base32HexAlphaLower,
		MultibaseCode: 'v',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseLower,
		Description:   "RFC4648 Base32hex lowercase without padding",
	},
	raw: b32HexLowerRaw, pad: b32HexLowerPad,
}

var b32HexUpper = base32Codec{
	meta: mbase.Meta{
		Name:          "base32hexupper",
		Aliases:       []string{"B32HEX"},
		Alphabet:      base32HexAlphaUpper,
		MultibaseCode: 'V',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseUpper,
		Description:   "RFC4648 Base32hex uppercase without padding",
	},
	raw: b32HexUpperRaw, pad: b32HexUpperPad,
}

var b32HexPadLower = base32Codec{
	meta: mbase.Meta{
		Name:          "base32hexpadlower",
		Aliases:       []string{"base32hexpad", "b32hexpad"},
		Alphabet:      base32HexAlphaLower,
		MultibaseCode: 't',
		Padding:       mbase.PaddingRequired,
		Case:          mbase.CaseLower,
		Description:   "RFC4648 Base32hex lowercase with padding",
	},
	raw: b32HexLowerRaw, pad: b32HexLowerPad, pads: true,
}

var b32HexPadUpper = base32Codec{
	meta: mbase.Meta{
		Name:          "base32hexpadupper",
		Aliases:       []string{"B32HEXPAD"},
		Alphabet:      base32HexAlphaUpper,
		MultibaseCode: 'T',
		Padding:       mbase.PaddingRequired,
		Case:          mbase.CaseUpper,
		Description:   "RFC4648 Base32hex uppercase with padding",
	},
	raw: b32HexUpperRaw, pad: b32HexUpperPad, pads: true,
}

func (c base32Codec) Meta() mbase.Meta { return c.meta }

func (c base32Codec) Encode(src []byte) string {
	if c.pads {
		return c.pad.EncodeToString(src)
	}
	return c.raw.EncodeToString(src)
}

func (c base32Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	if mode == mbase.Strict {
		// The stdlib decoder silently skips \r and \n; the charset check
		// runs first so strict mode still rejects them.
		if err := mbase.ValidateAlphabetPadding(cleaned, c.meta.Alphabet, c.pads); err != nil {
			return nil, err
		}
		enc := c.raw
		if c.pads {
			enc = c.pad
		}
		out, err := enc.DecodeString(cleaned)
		if err != nil {
			return nil, &mbase.InvalidInputError{Message: err.Error()}
		}
		return out, nil
	}
	stripped := strings.TrimRight(mbase.Normalize(input, c.meta.Case, mode), "=")
	if out, err := c.raw.DecodeString(stripped); err == nil {
		return out, nil
	}
	out, err := c.pad.DecodeString(padToBase32(stripped))
	if err != nil {
		return nil, &mbase.InvalidInputError{Message: err.Error()}
	}
	return out, nil
}

func (c base32Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (c base32Codec) DetectScore(input string) mbase.DetectCandidate {
	name := c.meta.Name
	if input == "" {
		return emptyCandidate(name)
	}
	cand := mbase.DetectCandidate{Codec: name}
	if code := c.meta.MultibaseCode; strings.HasPrefix(input, string(code)) {
		cand.Confidence = mbase.MultibaseMatch
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("multibase prefix '%c' detected", code))
	}
	ratio := charRatio(input, func(r rune) bool {
		return strings.ContainsRune(c.meta.Alphabet, r) || r == '='
	})
	switch {
	case ratio == 1:
		cand.Confidence = max(cand.Confidence, mbase.AlphabetMatch)
		cand.Reasons = append(cand.Reasons, "all characters valid")
	case ratio >= 0.9:
		cand.Confidence = max(cand.Confidence, mbase.WeakMatch)
	}
	if c.pads == strings.Contains(input, "=") {
		cand.Confidence += 0.1
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}

// padToBase32 restores the '=' padding a lenient input may have dropped.
func padToBase32(input string) string {
	var pad int
	switch len(input) % 8 {
	case 0:
		return input
	case 2:
		pad = 6
	case 4:
		pad = 4
	case 5:
		pad = 3
	case 7:
		pad = 1
	}
	return input + strings.Repeat("=", pad)
}
