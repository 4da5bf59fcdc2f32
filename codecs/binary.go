package codecs

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/mbase-io/mbase"
)

// radixCodec renders each byte as a fixed-width digit group: eight binary
// digits for base2, three octal digits for base8.
type radixCodec struct {
	meta      mbase.Meta
	base      int
	width     int    // encoded characters per byte
	digitWord string // "binary" / "octal", for detection messages
	lenBonus  int    // min length before the multiple-of-width reason fires
}

var base2 = radixCodec{
	meta: mbase.Meta{
		Name:          "base2",
		Aliases:       []string{"binary", "bin"},
		Alphabet:      "01",
		MultibaseCode: '0',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseInsensitive,
		Description:   "Binary representation (base2)",
	},
	base: 2, width: 8, digitWord: "binary", lenBonus: 16,
}

var base8 = radixCodec{
	meta: mbase.Meta{
		Name:          "base8",
		Aliases:       []string{"octal", "oct"},
		Alphabet:      "01234567",
		MultibaseCode: '7',
		Padding:       mbase.PaddingNone,
		Case:          mbase.CaseInsensitive,
		Description:   "Octal representation (base8)",
	},
	base: 8, width: 3, digitWord: "octal",
}

func (c radixCodec) Meta() mbase.Meta { return c.meta }

func (c radixCodec) Encode(src []byte) string {
	out := make([]byte, 0, len(src)*c.width)
	for _, b := range src {
		s := strconv.FormatUint(uint64(b), c.base)
		for pad := c.width - len(s); pad > 0; pad-- {
			out = append(out, '0')
		}
		out = append(out, s...)
	}
	return string(out)
}

func (c radixCodec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := mbase.CleanForMode(input, mode)
	if len(cleaned)%c.width != 0 {
		return nil, &mbase.InvalidLengthError{
			Constraint: mbase.LengthConstraint{MultipleOf: c.width},
			Actual:     len(cleaned),
		}
	}
	out := make([]byte, 0, len(cleaned)/c.width)
	for i := 0; i < len(cleaned); i += c.width {
		group := cleaned[i : i+c.width]
		v, err := strconv.ParseUint(group, c.base, 8)
		if err != nil {
			return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("invalid %s digit group %q", c.digitWord, group)}
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func (c radixCodec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (c radixCodec) DetectScore(input string) mbase.DetectCandidate {
	name := c.meta.Name
	if input == "" {
		return emptyCandidate(name)
	}
	cand := mbase.DetectCandidate{Codec: name}
	ratio := charRatio(input, inAlphabet(c.meta.Alphabet))
	n := utf8.RuneCountInString(input)
	switch {
	case ratio == 1:
		cand.Confidence = mbase.AlphabetMatch
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("all characters are %s digits", c.digitWord))
		if n >= c.lenBonus && n%c.width == 0 {
			cand.Reasons = append(cand.Reasons, fmt.Sprintf("length is multiple of %d", c.width))
		} else if n%c.width != 0 {
			cand.Warnings = append(cand.Warnings, fmt.Sprintf("length not multiple of %d", c.width))
		}
	case ratio > 0.9:
		cand.Confidence = mbase.WeakMatch
		cand.Warnings = append(cand.Warnings, fmt.Sprintf("%.1f%% non-%s characters", (1-ratio)*100, c.digitWord))
	}
	return cand
}
