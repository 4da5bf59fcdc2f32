package mbase

import (
	"errors"
	"testing"
)

func TestCleanForMode(t *testing.T) {
	in := " a\tb\nc\r"
	if got := CleanForMode(in, Strict); got != in {
		t.Fatalf("Strict must not touch input, got %q", got)
	}
	if got := CleanForMode(in, Lenient); got != "abc" {
		t.Fatalf("Lenient strip: got %q want %q", got, "abc")
	}
}

func TestNormalizeFolding(t *testing.T) {
	cases := []struct {
		rule CaseRule
		mode Mode
		want string
	}{
		{CaseLower, Lenient, "abc"},
		{CaseUpper, Lenient, "ABC"},
		{CaseLower, Strict, "AbC"}, // strict never folds
		{CaseSensitive, Lenient, "AbC"},
		{CaseInsensitive, Lenient, "AbC"}, // no canonical case, no fold
	}
	for _, tc := range cases {
		if got := Normalize("AbC", tc.rule, tc.mode); got != tc.want {
			t.Fatalf("Normalize(%v, %v): got %q want %q", tc.rule, tc.mode, got, tc.want)
		}
	}
}

func TestValidateAlphabetPositions(t *testing.T) {
	var ic *InvalidCharError

	err := ValidateAlphabet("ab!c", "abc", Strict)
	if !errors.As(err, &ic) || ic.Char != '!' || ic.Pos != 2 {
		t.Fatalf("want invalid '!' at 2, got %v", err)
	}

	// Lenient positions are measured in the cleaned text.
	err = ValidateAlphabet(" a b!c", "abc", Lenient)
	if !errors.As(err, &ic) || ic.Char != '!' || ic.Pos != 2 {
		t.Fatalf("want invalid '!' at cleaned position 2, got %v", err)
	}

	if err := ValidateAlphabet("abc", "abc", Strict); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestValidateAlphabetPadding(t *testing.T) {
	if err := ValidateAlphabetPadding("ab==", "ab", true); err != nil {
		t.Fatalf("padding should be tolerated: %v", err)
	}
	var ic *InvalidCharError
	err := ValidateAlphabetPadding("ab=", "ab", false)
	if !errors.As(err, &ic) || ic.Char != '=' || ic.Pos != 2 {
		t.Fatalf("want invalid '=' at 2, got %v", err)
	}
}

func TestCaseRuleInsensitive(t *testing.T) {
	if CaseSensitive.Insensitive() {
		t.Fatalf("CaseSensitive must not allow folding")
	}
	for _, r := range []CaseRule{CaseInsensitive, CaseLower, CaseUpper} {
		if !r.Insensitive() {
			t.Fatalf("%v should allow folding", r)
		}
	}
}
