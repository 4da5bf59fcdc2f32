package codecs

import (
	"math/big"

	"github.com/mbase-io/mbase"
)

// base62Alphabet orders digits before upper before lower, which differs
// from math/big's base-62 digit set; conversion is done by hand.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type base62Codec struct{}

func (base62Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "base62",
		Aliases:     []string{"b62"},
		Alphabet:    base62Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Base62 (0-9A-Za-z) big-integer encoding",
	}
}

func (base62Codec) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}
	n := new(big.Int).SetBytes(src)
	rem := new(big.Int)
	base := big.NewInt(62)
	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		digits = append(digits, base62Alphabet[rem.Int64()])
	}
	out := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, '0')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

func (base62Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	if cleaned == "" {
		return nil, nil
	}
	n := new(big.Int)
	base := big.NewInt(62)
	digit := new(big.Int)
	for pos, r := range []rune(cleaned) {
		var d int64
		switch {
		case r >= '0' && r <= '9':
			d = int64(r - '0')
		case r >= 'A' && r <= 'Z':
			d = int64(r-'A') + 10
		case r >= 'a' && r <= 'z':
			d = int64(r-'a') + 36
		default:
			return nil, &mbase.InvalidCharError{Char: r, Pos: pos}
		}
		n.Mul(n, base)
		n.Add(n, digit.SetInt64(d))
	}
	zeros := 0
	for _, r := range cleaned {
		if r != '0' {
			break
		}
		zeros++
	}
	return append(make([]byte, zeros), n.Bytes()...), nil
}

func (base62Codec) Validate(input string, mode mbase.Mode) error {
	return mbase.ValidateAlphabet(input, base62Alphabet, mode)
}

func (base62Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("base62")
	}
	cand := mbase.DetectCandidate{
		Codec:    "base62",
		Warnings: []string{"base62 has no standard; low confidence"},
	}
	if charRatio(input, inAlphabet(base62Alphabet)) == 1 {
		cand.Confidence = mbase.WeakMatch
		cand.Reasons = append(cand.Reasons, "all characters alphanumeric")
	}
	return cand
}
