package mbase

import "strings"

// CleanForMode applies mode-dependent whitespace handling: Strict returns
// the input untouched, Lenient strips all ASCII whitespace. Codecs must use
// this (or Normalize) instead of inventing ad hoc whitespace handling, so
// error positions are consistent across the catalog.
func CleanForMode(input string, mode Mode) string {
	if mode == Strict {
		return input
	}
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if isASCIIWhitespace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize cleans the input for the mode and, in Lenient mode, folds case
// toward the canonical case declared by the rule. CaseSensitive and
// CaseInsensitive inputs are never folded; codecs with an Insensitive rule
// but no canonical case handle folding themselves.
func Normalize(input string, c CaseRule, mode Mode) string {
	cleaned := CleanForMode(input, mode)
	if mode == Strict {
		return cleaned
	}
	switch c {
	case CaseLower:
		return strings.ToLower(cleaned)
	case CaseUpper:
		return strings.ToUpper(cleaned)
	default:
		return cleaned
	}
}

// ValidateAlphabet checks that every character of the cleaned input is a
// member of alphabet. Positions in returned errors are indexes into the
// cleaned text.
func ValidateAlphabet(input, alphabet string, mode Mode) error {
	cleaned := CleanForMode(input, mode)
	for pos, r := range []rune(cleaned) {
		if !strings.ContainsRune(alphabet, r) {
			return invalidChar(r, pos)
		}
	}
	return nil
}

// ValidateAlphabetPadding is ValidateAlphabet for already-cleaned input,
// optionally tolerating '=' padding characters.
func ValidateAlphabetPadding(input, alphabet string, allowPadding bool) error {
	for pos, r := range []rune(input) {
		if strings.ContainsRune(alphabet, r) {
			continue
		}
		if allowPadding && r == '=' {
			continue
		}
		return invalidChar(r, pos)
	}
	return nil
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
