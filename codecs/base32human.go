package codecs

import (
	"strings"

	"github.com/mbase-io/mbase"
)

// The human-oriented Base32 dialects share the same 5-bit packing as
// RFC 4648 but swap the alphabet: z-base-32 optimizes for handwriting,
// Crockford drops the confusable I/L/O/U.

const (
	zbase32Alphabet   = "ybndrfg8ejkmcpqxot1uwisza345h769"
	crockfordAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
)

func encode5Bit(src []byte, alphabet string) string {
	var b strings.Builder
	b.Grow((len(src)*8 + 4) / 5)
	var buf uint64
	bits := 0
	for _, by := range src {
		buf = buf<<8 | uint64(by)
		bits += 8
		for bits >= 5 {
			bits -= 5
			b.WriteByte(alphabet[buf>>uint(bits)&0x1f])
		}
	}
	if bits > 0 {
		b.WriteByte(alphabet[buf<<uint(5-bits)&0x1f])
	}
	return b.String()
}

func decode5Bit(vals []byte, name string) ([]byte, error) {
	var buf uint64
	bits := 0
	out := make([]byte, 0, len(vals)*5/8)
	for _, v := range vals {
		buf = buf<<5 | uint64(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>uint(bits)))
		}
	}
	if bits > 0 && buf&(1<<uint(bits)-1) != 0 {
		return nil, &mbase.InvalidInputError{Message: name + " decode: non-zero padding bits"}
	}
	return out, nil
}

type zbase32Codec struct{}

func (zbase32Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:          "zbase32",
		Aliases:       []string{"z32", "base32z"},
		Alphabet:      zbase32Alphabet,
		MultibaseCode: 'h',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseLower,
		Description:   "z-base-32 human-oriented encoding",
	}
}

func (zbase32Codec) Encode(src []byte) string {
	return encode5Bit(src, zbase32Alphabet)
}

func (zbase32Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	vals := make([]byte, 0, len(cleaned))
	for pos, r := range []rune(cleaned) {
		idx := strings.IndexRune(zbase32Alphabet, r)
		if idx < 0 {
			return nil, &mbase.InvalidCharError{Char: r, Pos: pos}
		}
		vals = append(vals, byte(idx))
	}
	return decode5Bit(vals, "zbase32")
}

func (zbase32Codec) Validate(input string, mode mbase.Mode) error {
	return mbase.ValidateAlphabet(input, zbase32Alphabet, mode)
}

func (zbase32Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("zbase32")
	}
	cand := mbase.DetectCandidate{Codec: "zbase32"}
	if strings.HasPrefix(input, "h") {
		cand.Confidence = mbase.MultibaseMatch
		cand.Reasons = append(cand.Reasons, "multibase prefix 'h' detected")
	}
	if charRatio(input, inAlphabet(zbase32Alphabet)) == 1 {
		cand.Confidence = max(cand.Confidence, mbase.PartialMatch)
		cand.Reasons = append(cand.Reasons, "all characters valid")
	}
	cand.Confidence = min(cand.Confidence, 1)
	return cand
}

type crockford32Codec struct{}

func (crockford32Codec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "crockford32",
		Aliases:     []string{"crockford", "cf32"},
		Alphabet:    crockfordAlphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseUpper,
		Description: "Crockford's Base32 (human-friendly, no I/L/O/U)",
	}
}

func (crockford32Codec) Encode(src []byte) string {
	return encode5Bit(src, crockfordAlphabet)
}

func (crockford32Codec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := crockfordClean(input, mode)
	if cleaned == "" {
		return nil, nil
	}
	vals := make([]byte, 0, len(cleaned))
	for pos, r := range []rune(cleaned) {
		v, ok := crockfordValue(r, mode)
		if !ok {
			return nil, &mbase.InvalidCharError{Char: r, Pos: pos}
		}
		vals = append(vals, v)
	}
	return decode5Bit(vals, "crockford32")
}

func (crockford32Codec) Validate(input string, mode mbase.Mode) error {
	cleaned := crockfordClean(input, mode)
	for pos, r := range []rune(cleaned) {
		upper := asciiUpper(r)
		var ok bool
		if mode == mbase.Strict {
			ok = strings.ContainsRune(crockfordAlphabet, upper) && !(r >= 'a' && r <= 'z')
		} else {
			ok = strings.ContainsRune(crockfordAlphabet, upper) ||
				upper == 'O' || upper == 'I' || upper == 'L'
		}
		if !ok {
			return &mbase.InvalidCharError{Char: r, Pos: pos}
		}
	}
	return nil
}

func (crockford32Codec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("crockford32")
	}
	cand := mbase.DetectCandidate{Codec: "crockford32"}
	ratio := charRatio(input, func(r rune) bool {
		return strings.ContainsRune(crockfordAlphabet, asciiUpper(r))
	})
	if ratio == 1 {
		cand.Confidence = mbase.PartialMatch
		cand.Reasons = append(cand.Reasons, "all characters valid")
	}
	if strings.ContainsAny(input, "ILO") {
		cand.Warnings = append(cand.Warnings, "contains confusable characters (I/L/O)")
	}
	return cand
}

// crockfordClean additionally drops the hyphens Crockford allows as visual
// separators; Lenient mode only.
func crockfordClean(input string, mode mbase.Mode) string {
	cleaned := mbase.CleanForMode(input, mode)
	if mode == mbase.Lenient {
		cleaned = strings.ReplaceAll(cleaned, "-", "")
	}
	return cleaned
}

// crockfordValue folds case always; the I/L/O confusable aliases apply only
// in Lenient mode.
func crockfordValue(r rune, mode mbase.Mode) (byte, bool) {
	upper := asciiUpper(r)
	if mode == mbase.Lenient {
		switch upper {
		case 'O':
			return 0, true
		case 'I', 'L':
			return 1, true
		}
	}
	idx := strings.IndexRune(crockfordAlphabet, upper)
	if idx < 0 {
		return 0, false
	}
	return byte(idx), true
}
