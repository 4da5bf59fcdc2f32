package codecs

import (
	"fmt"

	"github.com/mbase-io/mbase"
)

// quotedPrintableCodec is hand-rolled rather than built on
// mime/quotedprintable: the stdlib writer wraps at 76 columns with strict
// CRLF handling, while this dialect soft-wraps at 75 and keeps Lenient-mode
// recovery for truncated escapes.
type quotedPrintableCodec struct{}

const qpHexUpper = "0123456789ABCDEF"

func qpSafe(b byte) bool { return b >= 33 && b <= 126 && b != '=' }

func (quotedPrintableCodec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "quoted-printable",
		Aliases:     []string{"qp"},
		Alphabet:    "printable ASCII + =XX hex escapes",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Quoted-Printable (RFC 2045) for email/MIME",
	}
}

func (quotedPrintableCodec) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	out := make([]byte, 0, len(src))
	lineLen := 0
	for _, b := range src {
		if qpSafe(b) {
			if lineLen >= 75 {
				out = append(out, '=', '\r', '\n')
				lineLen = 0
			}
			out = append(out, b)
			lineLen++
			continue
		}
		if lineLen+3 > 75 {
			out = append(out, '=', '\r', '\n')
			lineLen = 0
		}
		out = append(out, '=', qpHexUpper[b>>4], qpHexUpper[b&0x0f])
		lineLen += 3
	}
	return string(out)
}

func (quotedPrintableCodec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	if input == "" {
		return nil, nil
	}
	runes := []rune(input)
	var out []byte
	pos := 0
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '=':
			switch {
			case i+2 < len(runes) && runes[i+1] == '\r' && runes[i+2] == '\n':
				// soft line break
				i += 2
				pos += 3
			case i+1 < len(runes) && runes[i+1] == '\n':
				i++
				pos += 2
			case i+2 < len(runes):
				v1 := hexVal(runes[i+1])
				if v1 < 0 {
					return nil, &mbase.InvalidCharError{Char: runes[i+1], Pos: pos + 1}
				}
				v2 := hexVal(runes[i+2])
				if v2 < 0 {
					return nil, &mbase.InvalidCharError{Char: runes[i+2], Pos: pos + 2}
				}
				out = append(out, byte(v1<<4|v2))
				i += 2
				pos += 3
			case i+1 < len(runes) && mode == mbase.Lenient:
				if v := hexVal(runes[i+1]); v >= 0 {
					out = append(out, byte(v))
				}
				i++
				pos += 2
			default:
				return nil, &mbase.InvalidInputError{Message: "incomplete escape sequence"}
			}
		case c == '\r' || c == '\n':
			if mode == mbase.Strict {
				out = append(out, byte(c))
			}
			pos++
		default:
			out = append(out, byte(c))
			pos++
		}
	}
	return out, nil
}

func (c quotedPrintableCodec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (quotedPrintableCodec) DetectScore(input string) mbase.DetectCandidate {
	const name = "quoted-printable"
	if input == "" {
		return emptyCandidate(name)
	}
	escapes := 0
	validEscapes := 0
	softBreaks := 0
	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '=' {
			continue
		}
		escapes++
		switch {
		case i+2 < len(runes) && runes[i+1] == '\r' && runes[i+2] == '\n':
			softBreaks++
			i += 2
		case i+1 < len(runes) && runes[i+1] == '\n':
			softBreaks++
			i++
		case i+2 < len(runes) && isHexDigit(runes[i+1]) && isHexDigit(runes[i+2]):
			validEscapes++
			i += 2
		}
	}
	if escapes == 0 {
		return mbase.DetectCandidate{
			Codec:      name,
			Confidence: 0.2,
			Reasons:    []string{"no escape sequences found"},
		}
	}
	ratio := float64(validEscapes+softBreaks) / float64(escapes)
	conf := mbase.WeakMatch
	switch {
	case ratio > 0.8:
		conf = 0.8
	case ratio > 0.5:
		conf = mbase.AlphabetMatch
	}
	return mbase.DetectCandidate{
		Codec:      name,
		Confidence: conf,
		Reasons: []string{
			fmt.Sprintf("%d valid escape sequences", validEscapes),
			fmt.Sprintf("%d soft line breaks", softBreaks),
		},
	}
}
