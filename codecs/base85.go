package codecs

import (
	"fmt"
	"strings"

	"github.com/mbase-io/mbase"
)

// ascii85 is hand-rolled rather than built on encoding/ascii85 because the
// Adobe variant emits the 'z' shorthand for all-zero groups, which the
// stdlib encoder never produces.

const (
	ascii85Alphabet = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstu"
	z85Alphabet     = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"
)

type ascii85Codec struct{}

func (ascii85Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "ascii85",
		Aliases:     []string{"base85"},
		Alphabet:    ascii85Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Ascii85/Base85 encoding (Adobe variant)",
	}
}

func (ascii85Codec) Encode(src []byte) string {
	var b strings.Builder
	for i := 0; i < len(src); i += 4 {
		chunk := src[i:min(i+4, len(src))]
		var val uint32
		for j, by := range chunk {
			val |= uint32(by) << (24 - 8*j)
		}
		if len(chunk) == 4 && val == 0 {
			b.WriteByte('z')
			continue
		}
		var chars [5]byte
		v := val
		for j := 4; j >= 0; j-- {
			chars[j] = byte(v % 85)
			v /= 85
		}
		for _, ch := range chars[:len(chunk)+1] {
			b.WriteByte(ch + 33)
		}
	}
	return b.String()
}

func (ascii85Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	if strings.HasPrefix(cleaned, "<~") && strings.HasSuffix(cleaned, "~>") && len(cleaned) >= 4 {
		cleaned = cleaned[2 : len(cleaned)-2]
	}
	if cleaned == "" {
		return nil, nil
	}
	var out []byte
	group := make([]byte, 0, 5)
	pos := 0
	for _, r := range cleaned {
		if r == 'z' {
			if len(group) != 0 {
				return nil, &mbase.InvalidInputError{Message: "'z' in middle of group"}
			}
			out = append(out, 0, 0, 0, 0)
			pos++
			continue
		}
		if r < '!' || r > 'u' {
			return nil, &mbase.InvalidCharError{Char: r, Pos: pos}
		}
		group = append(group, byte(r-'!'))
		pos++
		if len(group) == 5 {
			val := fold85(group)
			out = append(out, byte(val>>24), byte(val>>16), byte(val>>8), byte(val))
			group = group[:0]
		}
	}
	if len(group) > 0 {
		padCount := 5 - len(group)
		for i := 0; i < padCount; i++ {
			group = append(group, 84)
		}
		val := fold85(group)
		quad := [4]byte{byte(val >> 24), byte(val >> 16), byte(val >> 8), byte(val)}
		out = append(out, quad[:4-padCount]...)
	}
	return out, nil
}

func (c ascii85Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (ascii85Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("ascii85")
	}
	cand := mbase.DetectCandidate{Codec: "ascii85"}
	if strings.HasPrefix(input, "<~") && strings.HasSuffix(input, "~>") {
		cand.Confidence = mbase.MultibaseMatch
		cand.Reasons = append(cand.Reasons, "has <~ ~> wrapper")
	}
	ratio := charRatio(input, func(r rune) bool {
		return r >= '!' && r <= 'u' || r == 'z'
	})
	if ratio > 0.9 {
		cand.Confidence = max(cand.Confidence, mbase.PartialMatch)
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("%.0f%% valid ascii85 chars", ratio*100))
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}

// z85Codec follows ZeroMQ RFC 32 for full 4-byte groups; a trailing partial
// group of n bytes becomes n+1 characters so that Encode is defined for any
// length, mirroring the ascii85 truncation rule.
type z85Codec struct{}

func (z85Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "z85",
		Alphabet:    z85Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Z85 encoding (ZeroMQ RFC 32)",
	}
}

func (z85Codec) Encode(src []byte) string {
	var b strings.Builder
	for i := 0; i < len(src); i += 4 {
		chunk := src[i:min(i+4, len(src))]
		var val uint32
		for j, by := range chunk {
			val |= uint32(by) << (24 - 8*j)
		}
		var chars [5]byte
		v := val
		for j := 4; j >= 0; j-- {
			chars[j] = z85Alphabet[v%85]
			v /= 85
		}
		b.Write(chars[:len(chunk)+1])
	}
	return b.String()
}

func (z85Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	if cleaned == "" {
		return nil, nil
	}
	runes := []rune(cleaned)
	if len(runes)%5 == 1 {
		return nil, &mbase.InvalidLengthError{
			Constraint: mbase.LengthConstraint{MultipleOf: 5},
			Actual:     len(runes),
			Message:    "final group too short",
		}
	}
	var out []byte
	for i := 0; i < len(runes); i += 5 {
		end := min(i+5, len(runes))
		group := make([]byte, 0, 5)
		for j := i; j < end; j++ {
			idx := strings.IndexRune(z85Alphabet, runes[j])
			if idx < 0 {
				return nil, &mbase.InvalidCharError{Char: runes[j], Pos: j}
			}
			group = append(group, byte(idx))
		}
		padCount := 5 - len(group)
		for k := 0; k < padCount; k++ {
			group = append(group, 84)
		}
		val := fold85(group)
		quad := [4]byte{byte(val >> 24), byte(val >> 16), byte(val >> 8), byte(val)}
		out = append(out, quad[:4-padCount]...)
	}
	return out, nil
}

func (c z85Codec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (z85Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("z85")
	}
	cand := mbase.DetectCandidate{Codec: "z85"}
	ratio := charRatio(input, inAlphabet(z85Alphabet))
	if ratio == 1 && len(input)%5 == 0 {
		cand.Confidence = mbase.PartialMatch
		cand.Reasons = append(cand.Reasons, "all chars valid z85, length multiple of 5")
	} else if ratio > 0.9 {
		cand.Confidence = mbase.WeakMatch
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("%.0f%% valid z85 chars", ratio*100))
	}
	return cand
}

func fold85(vals []byte) uint32 {
	var v uint32
	for _, x := range vals {
		v = v*85 + uint32(x)
	}
	return v
}
