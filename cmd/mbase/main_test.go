package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/mbase-io/mbase"
)

func TestExitCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{mbase.ErrChecksumMismatch, 11},
		{&ioError{err: errors.New("disk full")}, 12},
		{&mbase.CodecNotFoundError{Name: "base99"}, 13},
		{&mbase.InvalidInputError{Message: "bad"}, 10},
		{&mbase.InvalidCharError{Char: '!', Pos: 3}, 10},
		{&mbase.InvalidLengthError{Actual: 5}, 10},
		{&mbase.InvalidPaddingError{Message: "missing"}, 10},
		{errors.New("something else"), 1},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := parseMode("strict"); err != nil || m != mbase.Strict {
		t.Fatalf("strict: %v %v", m, err)
	}
	if m, err := parseMode("Lenient"); err != nil || m != mbase.Lenient {
		t.Fatalf("lenient: %v %v", m, err)
	}
	if _, err := parseMode("sloppy"); err == nil {
		t.Fatalf("unknown mode accepted")
	}
}

func TestGroupChars(t *testing.T) {
	if got := groupChars("ABCDEFGH", 4, " "); got != "ABCD EFGH" {
		t.Fatalf("got %q", got)
	}
	if got := groupChars("ABCDEFGHI", 4, "-"); got != "ABCD-EFGH-I" {
		t.Fatalf("got %q", got)
	}
	if got := groupChars("AB", 4, " "); got != "AB" {
		t.Fatalf("got %q", got)
	}
}

func TestLooksLikePath(t *testing.T) {
	for _, s := range []string{"dir/file", `dir\file`, "data.txt", "dump.bin", "out.log"} {
		if !looksLikePath(s) {
			t.Fatalf("%q should look like a path", s)
		}
	}
	for _, s := range []string{"SGVsbG8", "48656c6c6f", "hello world"} {
		if looksLikePath(s) {
			t.Fatalf("%q should not look like a path", s)
		}
	}
}

func TestCaretContext(t *testing.T) {
	got := caretContext("Hello World Test", 6, 5)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("want two lines, got %q", got)
	}
	if !strings.Contains(lines[0], "World") {
		t.Fatalf("window missing offending region: %q", lines[0])
	}
	caret := strings.IndexByte(lines[1], '^')
	if caret < 0 || lines[0][caret] != 'W' {
		t.Fatalf("caret misaligned: %q", got)
	}

	// Position past the end clamps instead of panicking.
	got = caretContext("ab", 99, 5)
	if !strings.HasPrefix(got, "ab\n") {
		t.Fatalf("clamped context: %q", got)
	}
}

func TestFormatDecoded(t *testing.T) {
	if got := formatDecoded(nil); got != "(empty)" {
		t.Fatalf("empty: %q", got)
	}
	if got := formatDecoded([]byte("hi")); got != `"hi"` {
		t.Fatalf("printable: %q", got)
	}
	got := formatDecoded([]byte{0x00, 0x01, 0x02})
	if !strings.HasPrefix(got, "[000102]") || !strings.HasSuffix(got, "(3 bytes)") {
		t.Fatalf("binary: %q", got)
	}
	long := make([]byte, 40)
	got = formatDecoded(long)
	if !strings.Contains(got, "...") || !strings.HasSuffix(got, "(40 bytes)") {
		t.Fatalf("truncated binary: %q", got)
	}
}

func TestPrintableText(t *testing.T) {
	if s := printableText([]byte("line\nwith\ttabs")); s == nil {
		t.Fatalf("tabs and newlines are printable")
	}
	if s := printableText([]byte{0x00, 0x41}); s != nil {
		t.Fatalf("NUL is not printable, got %q", *s)
	}
	if s := printableText([]byte{0xff, 0xfe}); s != nil {
		t.Fatalf("invalid UTF-8 is not printable, got %q", *s)
	}
}

func TestSuggestFixes(t *testing.T) {
	got := suggestFixes(&mbase.InvalidCharError{Char: ' ', Pos: 2}, "base64", "SG Vs")
	if len(got) != 1 || !strings.Contains(got[0], "lenient") {
		t.Fatalf("whitespace suggestion: %v", got)
	}

	got = suggestFixes(&mbase.InvalidCharError{Char: '=', Pos: 7}, "base64", "SGVsbG8=")
	found := false
	for _, s := range got {
		if strings.Contains(s, "base64pad") {
			found = true
		}
	}
	if !found {
		t.Fatalf("padded variant suggestion missing: %v", got)
	}

	got = suggestFixes(mbase.ErrChecksumMismatch, "base58check", "abc")
	if len(got) != 2 {
		t.Fatalf("checksum suggestions: %v", got)
	}

	got = suggestFixes(&mbase.InvalidCharError{Char: 'x', Pos: 1}, "base16lower", "0x1234")
	last := got[len(got)-1]
	if !strings.Contains(last, "0x prefix") {
		t.Fatalf("0x suggestion missing: %v", got)
	}
}
