package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
)

// ioError marks read/write failures so they map to their own exit code.
type ioError struct{ err error }

func (e *ioError) Error() string { return fmt.Sprintf("I/O error: %v", e.err) }
func (e *ioError) Unwrap() error { return e.err }

// readInput resolves the input syntax: "-" is stdin, "@path" reads a file,
// anything else is literal data. A literal that looks like a path gets a
// warning instead of a guess.
func readInput(arg string) ([]byte, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, &ioError{err: err}
		}
		return data, nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, &ioError{err: err}
		}
		return data, nil
	default:
		if looksLikePath(arg) {
			fmt.Fprintln(os.Stderr, color.Yellow.Sprintf(
				"warning: treating %q as literal data; use @%s to read from file", arg, arg))
		}
		return []byte(arg), nil
	}
}

func looksLikePath(s string) bool {
	if strings.ContainsAny(s, `/\`) {
		return true
	}
	for _, ext := range []string{".txt", ".bin", ".dat", ".json", ".xml", ".csv", ".log"} {
		if strings.HasSuffix(s, ext) {
			return true
		}
	}
	return false
}

// writeOutput sends data to "-" (stdout) or a file. Binary data headed for a
// terminal is replaced by a hex preview unless force is set.
func writeOutput(arg string, data []byte, force bool) error {
	if arg != "-" {
		if err := os.WriteFile(strings.TrimPrefix(arg, "@"), data, 0o644); err != nil {
			return &ioError{err: err}
		}
		return nil
	}
	if isTerminal(os.Stdout) && !force && !utf8.Valid(data) {
		hexPreview(data)
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return &ioError{err: err}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// hexPreview prints up to 32 hexdump lines; the banner goes to stderr so the
// preview itself stays pipeable.
func hexPreview(data []byte) {
	const maxBytes = 16 * 32
	fmt.Fprintf(os.Stderr,
		"Binary output (%d bytes). Showing hex preview (use --force to print raw or -o file):\n\n",
		len(data))
	shown := data
	if len(shown) > maxBytes {
		shown = shown[:maxBytes]
	}
	os.Stdout.WriteString(hex.Dump(shown))
	if len(data) > maxBytes {
		fmt.Fprintf(os.Stderr, "\n... (%d more bytes)\n", len(data)-maxBytes)
	}
}
