package codecs

import (
	"fmt"
	"strings"

	"github.com/mbase-io/mbase"
)

// urlencodingCodec implements RFC 3986 percent-encoding: unreserved bytes
// pass through, everything else becomes %XX with uppercase hex.
type urlencodingCodec struct{}

func (urlencodingCodec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "urlencoding",
		Aliases:     []string{"url", "percent", "percentencoding"},
		Alphabet:    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~%",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "URL percent-encoding (RFC 3986)",
	}
}

func (urlencodingCodec) Encode(src []byte) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, by := range src {
		if isAlnum(rune(by)) || by == '-' || by == '_' || by == '.' || by == '~' {
			b.WriteByte(by)
		} else {
			fmt.Fprintf(&b, "%%%02X", by)
		}
	}
	return b.String()
}

func (urlencodingCodec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	runes := []rune(cleaned)
	var out []byte
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '%':
			if i+2 >= len(runes) {
				return nil, &mbase.InvalidInputError{Message: "incomplete percent sequence"}
			}
			hi, lo := hexVal(runes[i+1]), hexVal(runes[i+2])
			if hi < 0 || lo < 0 {
				return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("invalid hex in percent sequence: %c%c", runes[i+1], runes[i+2])}
			}
			out = append(out, byte(hi<<4|lo))
			i += 2
		case c < 128:
			out = append(out, byte(c))
		default:
			return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("non-ASCII character in URL encoding: %c", c)}
		}
	}
	return out, nil
}

func (c urlencodingCodec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (urlencodingCodec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("urlencoding")
	}
	cand := mbase.DetectCandidate{Codec: "urlencoding"}
	percents := strings.Count(input, "%")
	if percents > 0 {
		valid := 0
		for _, tail := range strings.Split(input, "%")[1:] {
			runes := []rune(tail)
			if len(runes) >= 2 && isHexDigit(runes[0]) && isHexDigit(runes[1]) {
				valid++
			}
		}
		switch {
		case valid == percents:
			cand.Confidence = mbase.AlphabetMatch
			cand.Reasons = append(cand.Reasons, fmt.Sprintf("found %d valid percent-encoded sequences", percents))
		case valid > 0:
			cand.Confidence = mbase.WeakMatch
			cand.Reasons = append(cand.Reasons, fmt.Sprintf("found %d valid sequences out of %d percent signs", valid, percents))
			cand.Warnings = append(cand.Warnings, "some percent sequences appear invalid")
		}
		return cand
	}
	urlSafe := charRatio(input, func(r rune) bool {
		return isAlnum(r) || strings.ContainsRune("-_.~/?=&", r)
	})
	if urlSafe > 0.9 {
		cand.Confidence = 0.3
		cand.Reasons = append(cand.Reasons, "contains URL-safe characters but no encoding")
		cand.Warnings = append(cand.Warnings, "could be plain text")
	}
	return cand
}
