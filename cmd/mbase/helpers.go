package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mbase-io/mbase"
	"github.com/mbase-io/mbase/internal/render"
)

func parseMode(s string) (mbase.Mode, error) {
	switch strings.ToLower(s) {
	case "strict":
		return mbase.Strict, nil
	case "lenient":
		return mbase.Lenient, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want strict or lenient)", s)
	}
}

// printResult marshals a structured result to stdout.
func printResult(f render.Format, v any) error {
	b, err := render.Marshal(f, v)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(b); err != nil {
		return &ioError{err: err}
	}
	return nil
}

func preview(s string) string {
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}

// printableText returns the decoded bytes as a string when they form
// printable UTF-8 (tabs and newlines allowed); nil means "show hex instead".
func printableText(data []byte) *string {
	if !utf8.Valid(data) {
		return nil
	}
	s := string(data)
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return nil
		}
	}
	return &s
}
