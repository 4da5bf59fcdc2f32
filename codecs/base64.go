package codecs

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mbase-io/mbase"
)

const (
	base64StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// base64Codec covers the four RFC 4648 Base64 variants: standard and
// URL-safe alphabets, padded and unpadded.
type base64Codec struct {
	meta mbase.Meta
	raw  *base64.Encoding
	pad  *base64.Encoding
	pads bool
}

var b64Std = base64Codec{
	meta: mbase.Meta{
		Name:          "base64",
		Aliases:       []string{"b64", "std64"},
		Alphabet:      base64StdAlphabet,
		MultibaseCode: 'm',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseSensitive,
		Description:   "RFC4648 Base64 without padding",
	},
	raw: base64.RawStdEncoding, pad: base64.StdEncoding,
}

var b64Pad = base64Codec{
	meta: mbase.Meta{
		Name:          "base64pad",
		Aliases:       []string{"b64pad"},
		Alphabet:      base64StdAlphabet,
		MultibaseCode: 'M',
		Padding:       mbase.PaddingRequired,
		Case:          mbase.CaseSensitive,
		Description:   "RFC4648 Base64 with required padding",
	},
	raw: base64.RawStdEncoding, pad: base64.StdEncoding, pads: true,
}

var b64URL = base64Codec{
	meta: mbase.Meta{
		Name:          "base64url",
		Aliases:       []string{"b64url", "url64"},
		Alphabet:      base64URLAlphabet,
		MultibaseCode: 'u',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseSensitive,
		Description:   "RFC4648 Base64url without padding",
	},
	raw: base64.RawURLEncoding, pad: base64.URLEncoding,
}

var b64URLPad = base64Codec{
	meta: mbase.Meta{
		Name:          "base64urlpad",
		Aliases:       []string{"b64urlpad"},
		Alphabet:      base64URLAlphabet,
		MultibaseCode: 'U',
		Padding:       mbase.PaddingRequired,
		Case:          mbase.CaseSensitive,
		Description:   "RFC4648 Base64url with required padding",
	},
	raw: base64.RawURLEncoding, pad: base64.URLEncoding, pads: true,
}

func (c base64Codec) Meta() mbase.Meta { return c.meta }

func (c base64Codec) Encode(src []byte) string {
	if c.pads {
		return c.pad.EncodeToString(src)
	}
	return c.raw.EncodeToString(src)
}

func (c base64Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	if mode == mbase.Strict {
		if err := c.Validate(cleaned, mbase.Strict); err != nil {
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
	var out []byte
	var err error
	if c.pads {
		out, err = c.pad.DecodeString(padToMultiple(cleaned, 4))
	} else {
		out, err = c.raw.DecodeString(strings.TrimRight(cleaned, "="))
	}
	if err != nil {
		return nil, &mbase.InvalidInputError{Message: err.Error()}
	}
	return out, nil
}

func (c base64Codec) Validate(input string, mode mbase.Mode) error {
	cleaned := mbase.CleanForMode(input, mode)
	if err := mbase.ValidateAlphabetPadding(cleaned, c.meta.Alphabet, c.pads); err != nil {
		return err
	}
	return validateBase64Padding(cleaned, c.pads)
}

func (c base64Codec) DetectScore(input string) mbase.DetectCandidate {
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
		cand.Confidence = max(cand.Confidence, 0.4)
		cand.Warnings = append(cand.Warnings, fmt.Sprintf("%.1f%% invalid characters", (1-ratio)*100))
	default:
		cand.Confidence = 0
		cand.Warnings = append(cand.Warnings, "too many invalid characters")
	}
	hasPadding := strings.Contains(input, "=")
	switch {
	case c.pads && hasPadding:
		cand.Confidence += 0.1
		cand.Reasons = append(cand.Reasons, "has expected padding")
	case !c.pads && !hasPadding:
		cand.Confidence += 0.05
		cand.Reasons = append(cand.Reasons, "no padding as expected")
	case c.pads && !hasPadding:
		cand.Warnings = append(cand.Warnings, "expected padding not found")
	}
	if len(strings.TrimRight(input, "="))%4 == 1 {
		cand.Confidence *= 0.5
		cand.Warnings = append(cand.Warnings, "invalid length (mod 4 = 1)")
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}

func validateBase64Padding(s string, required bool) error {
	pad := 0
	for i := len(s) - 1; i >= 0 && s[i] == '='; i-- {
		pad++
	}
	switch {
	case required && pad == 0 && len(s)%4 != 0:
		return &mbase.InvalidPaddingError{Message: "padding required"}
	case !required && pad > 0:
		return &mbase.InvalidPaddingError{Message: "padding not allowed"}
	case pad > 2:
		return &mbase.InvalidPaddingError{Message: "too many padding characters"}
	}
	return nil
}

func padToMultiple(input string, multiple int) string {
	stripped := strings.TrimRight(input, "=")
	rem := len(stripped) % multiple
	if rem == 0 {
		return stripped
	}
	return stripped + strings.Repeat("=", multiple-rem)
}
