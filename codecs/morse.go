package codecs

import (
	"fmt"
	"strings"

	"github.com/mbase-io/mbase"
)

var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '!': "-.-.--", '/': "-..-.",
	'@': ".--.-.", '=': "-...-",
	' ': "/",
}

var morseReverse = func() map[string]rune {
	m := make(map[string]rune, len(morseTable))
	for r, code := range morseTable {
		m[code] = r
	}
	return m
}()

// morseCodec writes space-separated symbols with '/' standing between
// words. Characters without a morse representation are dropped on encode.
type morseCodec struct{}

func (morseCodec) Meta() mbase.Meta {
	return mbase.Meta{
		Name:        "morse",
		Aliases:     []string{"morsecode"},
		Alphabet:    ".-/ ",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "International Morse code (space-separated)",
	}
}

func (morseCodec) Encode(src []byte) string {
	text := strings.ToUpper(string(src))
	parts := make([]string, 0, len(text))
	for _, r := range text {
		if code, ok := morseTable[r]; ok {
			parts = append(parts, code)
		}
	}
	return strings.Join(parts, " ")
}

func (morseCodec) Decode(input string, mode mbase.Mode) ([]byte, error) {
	cleaned := input
	if mode == mbase.Lenient {
		cleaned = strings.TrimSpace(input)
	}
	var out strings.Builder
	for _, word := range strings.Split(cleaned, "/") {
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		for _, code := range strings.Fields(word) {
			r, ok := morseReverse[code]
			if !ok {
				return nil, &mbase.InvalidInputError{Message: fmt.Sprintf("unknown morse sequence: %s", code)}
			}
			out.WriteRune(r)
		}
	}
	return []byte(out.String()), nil
}

func (c morseCodec) Validate(input string, mode mbase.Mode) error {
	return validateByDecode(c, input, mode)
}

func (morseCodec) DetectScore(input string) mbase.DetectCandidate {
	if input == "" {
		return emptyCandidate("morse")
	}
	cand := mbase.DetectCandidate{Codec: "morse"}
	ratio := charRatio(input, func(r rune) bool {
		return r == '.' || r == '-' || r == ' ' || r == '/'
	})
	switch {
	case ratio == 1:
		cand.Confidence = mbase.AlphabetMatch
		cand.Reasons = append(cand.Reasons, "all characters are morse symbols")
		valid := true
		for _, code := range strings.Fields(input) {
			for _, r := range code {
				if r != '.' && r != '-' && r != '/' {
					valid = false
				}
			}
		}
		if valid {
			cand.Reasons = append(cand.Reasons, "valid morse code patterns")
		}
	case ratio > 0.8:
		cand.Confidence = mbase.WeakMatch
		cand.Reasons = append(cand.Reasons, fmt.Sprintf("%.1f%% morse characters", ratio*100))
	}
	return cand
}
