package codecs

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/mbase-io/mbase"
)

const (
	base36AlphaLower = "0123456789abcdefghijklmnopqrstuvwxyz"
	base36AlphaUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// base36Codec treats the input as one big-endian integer; leading zero
// bytes are preserved as leading '0' digits.
type base36Codec struct {
	meta mbase.Meta
}

var base36Lower = base36Codec{
	meta: mbase.Meta{
		Name:          "base36lower",
		Aliases:       []string{"base36", "b36"},
		Alphabet:      base36AlphaLower,
		MultibaseCode: 'k',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseLower,
		Description:   "Base36 lowercase (0-9a-z)",
	},
}

var base36Upper = base36Codec{
	meta: mbase.Meta{
		Name:          "base36upper",
		Aliases:       []string{"B36"},
		Alphabet:      base36AlphaUpper,
		MultibaseCode: 'K',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseUpper,
		Description:   "Base36 uppercase (0-9A-Z)",
	},
}

func (c base36Codec) Meta() mbase.Meta { return c.meta }

func (c base36Codec) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}
	n := new(big.Int).SetBytes(src)
	digits := ""
	if n.Sign() > 0 {
		digits = n.Text(36)
		if c.meta.Case == mbase.CaseUpper {
			digits = strings.ToUpper(digits)
		}
	}
	return strings.Repeat("0", zeros) + digits
}

func (c base36Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	normalized := mbase.Normalize(input, c.meta.Case, mode)
	if normalized == "" {
		return nil, nil
	}
	for pos, r := range []rune(normalized) {
		if !strings.ContainsRune(c.meta.Alphabet, r) {
			return nil, &mbase.InvalidCharError{Char: r, Pos: pos}
		}
	}
	zeros := 0
	for _, r := range normalized {
		if r != '0' {
			break
		}
		zeros++
	}
	n, ok := new(big.Int).SetString(normalized, 36)
	if !ok {
		return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("not a base36 number: %s", normalized)}
	}
	return append(make([]byte, zeros), n.Bytes()...), nil
}

func (c base36Codec) Validate(input string, mode mbase.Mode) error {
	cleaned := mbase.CleanForMode(input, mode)
	for pos, r := range []rune(cleaned) {
		var ok bool
		if mode == mbase.Strict {
			ok = strings.ContainsRune(c.meta.Alphabet, r)
		} else {
			ok = strings.ContainsRune(base36AlphaLower, asciiLower(r))
		}
		if !ok {
			return &mbase.InvalidCharError{Char: r, Pos: pos}
		}
	}
	return nil
}

func (c base36Codec) DetectScore(input string) mbase.DetectCandidate {
	name := c.meta.Name
	if input == "" {
		return emptyCandidate(name)
	}
	cand := mbase.DetectCandidate{Codec: name}
	if code := c.meta.MultibaseCode; strings.HasPrefix(input, string(code)) {
		cand.Confidence = mbase.MultibaseMatch
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("multibase prefix '%c' detected", code))
	}
	if charRatio(input, isAlnum) == 1 {
		cand.Confidence = max(cand.Confidence, mbase.PartialMatch)
		cand.Reasons = append(cand.Reasons, "all characters alphanumeric")
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}
