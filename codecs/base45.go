package codecs

import (
	"fmt"
	"strings"

	"github.com/mbase-io/mbase"
)

// base45Alphabet is fixed by RFC 9285; the space and symbols are what make
// the encoding fit the QR alphanumeric character set.
const base45Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

type base45Codec struct{}

func (base45Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "base45",
		Aliases:     []string{"b45"},
		Alphabet:    base45Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseUpper,
		Description: "Base45 (RFC 9285) QR-code friendly encoding",
	}
}

func (base45Codec) Encode(src []byte) string {
	var b strings.Builder
	b.Grow((len(src)/2)*3 + 2)
	for i := 0; i < len(src); i += 2 {
		var n uint32
		pair := i+1 < len(src)
		if pair {
			n = uint32(src[i])*256 + uint32(src[i+1])
		} else {
			n = uint32(src[i])
		}
		b.WriteByte(base45Alphabet[n%45])
		b.WriteByte(base45Alphabet[(n/45)%45])
		if pair {
			b.WriteByte(base45Alphabet[n/(45*45)])
		}
	}
	return b.String()
}

func (base45Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	normalized := mbase.Normalize(input, mbase.CaseUpper, mode)
	if normalized == "" {
		return nil, nil
	}
	runes := []rune(normalized)
	vals := make([]uint32, 0, len(runes))
	for pos, r := range runes {
		idx := strings.IndexRune(base45Alphabet, r)
		if idx < 0 {
			return nil, &mbase.InvalidCharError{Char: r, Pos: pos}
		}
		vals = append(vals, uint32(idx))
	}
	if len(vals)%3 == 1 {
		return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("base45 length %d invalid (cannot be 1 mod 3)", len(vals))}
	}
	out := make([]byte, 0, (len(vals)/3)*2+1)
	for i := 0; i < len(vals); i += 3 {
		if i+2 < len(vals) {
			n := vals[i] + vals[i+1]*45 + vals[i+2]*45*45
			if n > 0xFFFF {
				return nil, &mbase.InvalidInputError{Message: "base45 value overflow"}
			}
			out = append(out, byte(n/256), byte(n%256))
		} else {
			n := vals[i] + vals[i+1]*45
			if n > 0xFF {
				return nil, &mbase.InvalidInputError{Message: "base45 value overflow"}
			}
			out = append(out, byte(n))
		}
	}
	return out, nil
}

func (base45Codec) Validate(input string, mode mbase.Mode) error {
	cleaned := mbase.CleanForMode(input, mode)
	for pos, r := range []rune(cleaned) {
		var ok bool
		if mode == mbase.Strict {
			ok = strings.ContainsRune(base45Alphabet, r)
		} else {
			ok = strings.ContainsRune(base45Alphabet, asciiUpper(r))
		}
		if !ok {
			return &mbase.InvalidCharError{Char: r, Pos: pos}
		}
	}
	if len(cleaned)%3 == 1 {
		return &mbase.InvalidInputError{Message: fmt.Sprintf("base45 length %d invalid", len(cleaned))}
	}
	return nil
}

func (base45Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("base45")
	}
	cand := mbase.DetectCandidate{Codec: "base45"}
	ratio := charRatio(input, func(r rune) bool {
		return strings.ContainsRune(base45Alphabet, asciiUpper(r))
	})
	if ratio == 1 {
		cand.Confidence = mbase.PartialMatch
		cand.Reasons = append(cand.Reasons, "all characters in base45 alphabet")
		if len(input)%3 != 1 {
			cand.Reasons = append(cand.Reasons, "valid length")
		}
	}
	if strings.ContainsAny(input, " %$") {
		cand.Confidence = max(cand.Confidence, mbase.AlphabetMatch)
		cand.Reasons = append(cand.Reasons, "contains base45-specific characters")
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}
