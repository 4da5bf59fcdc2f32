package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/urfave/cli/v2"

	"github.com/mbase-io/mbase"
	"github.com/mbase-io/mbase/internal/render"
)

func (a *app) explainCommand() *cli.Command {
	return &cli.Command{
		Name:  "explain",
		Usage: "explain why input fails to decode",
		Flags: []cli.Flag{
			codecFlag("base64"),
			inFlag(),
			modeFlag("strict"),
			jsonFlag(),
		},
		Action: func(c *cli.Context) error {
			mode, err := parseMode(c.String("mode"))
			if err != nil {
				return fail(err)
			}
			codec, err := a.reg.Get(c.String("codec"))
			if err != nil {
				return fail(err)
			}
			data, err := readInput(c.String("in"))
			if err != nil {
				return fail(err)
			}
			trimmed := strings.TrimSpace(string(data))

			res := render.ExplainResult{
				SchemaVersion: 1,
				Codec:         codec.Meta().Name,
				InputPreview:  preview(trimmed),
				Suggestions:   []string{},
			}
			if _, derr := codec.Decode(trimmed, mode); derr == nil {
				res.Valid = true
			} else {
				ee := render.ExplainError{Message: derr.Error()}
				var ic *mbase.InvalidCharError
				if errors.As(derr, &ic) {
					pos := ic.Pos
					ch := string(ic.Char)
					ctx := caretContext(trimmed, pos, 10)
					ee.Position = &pos
					ee.OffendingChar = &ch
					ee.Context = &ctx
				}
				res.Error = &ee
				res.Suggestions = suggestFixes(derr, codec.Meta().Name, trimmed)
			}

			if c.Bool("json") {
				return printResult(render.FormatJSON, res)
			}

			fmt.Printf("Codec: %s\n", res.Codec)
			fmt.Printf("Input: %s\n\n", res.InputPreview)
			if res.Valid {
				color.Green.Println("Status: VALID")
				fmt.Println("The input is valid for this codec.")
				return nil
			}
			color.Red.Println("Status: INVALID")
			fmt.Println()
			fmt.Printf("Error: %s\n", res.Error.Message)
			if res.Error.Position != nil {
				fmt.Printf("Position: %d\n", *res.Error.Position)
			}
			if res.Error.OffendingChar != nil {
				fmt.Printf("Character: %q\n", *res.Error.OffendingChar)
			}
			if res.Error.Context != nil {
				fmt.Println()
				fmt.Println(*res.Error.Context)
			}
			if len(res.Suggestions) > 0 {
				fmt.Println()
				fmt.Println("Suggestions:")
				for _, s := range res.Suggestions {
					fmt.Printf("  - %s\n", s)
				}
			}
			return nil
		},
	}
}

// caretContext renders a window of the input around pos with a marker line.
// Positions are rune indexes in the normalized text; in Strict mode they
// coincide with the displayed input.
func caretContext(input string, pos, window int) string {
	runes := []rune(input)
	pos = min(pos, len(runes))
	start := max(pos-window, 0)
	end := min(pos+window+1, len(runes))

	var b strings.Builder
	b.WriteString(string(runes[start:end]))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pos-start))
	b.WriteByte('^')
	return b.String()
}

func suggestFixes(err error, codecName, input string) []string {
	out := []string{}
	var (
		ic *mbase.InvalidCharError
		ip *mbase.InvalidPaddingError
		il *mbase.InvalidLengthError
	)
	switch {
	case errors.As(err, &ic):
		ch := ic.Char
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			out = append(out, "Try --mode lenient to ignore whitespace")
		}
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			out = append(out, "Try --mode lenient for case flexibility")
		}
		if ch == '=' {
			out = append(out, fmt.Sprintf("Padding character found; try a padded variant like %spad",
				strings.TrimSuffix(codecName, "pad")))
		}
	case errors.As(err, &ip):
		if strings.Contains(codecName, "pad") {
			out = append(out, "Input may have incorrect padding; try --mode lenient")
		} else {
			out = append(out, fmt.Sprintf("Try %spad variant for padded input", codecName))
		}
	case errors.As(err, &il):
		switch {
		case il.Constraint.MultipleOf == 2 && strings.Contains(codecName, "16"):
			out = append(out, "Hex input has odd length; may be missing a character")
		case il.Constraint.MultipleOf == 4 || il.Constraint.MultipleOf == 5:
			out = append(out, fmt.Sprintf("Input length %d doesn't match codec requirements", il.Actual))
		}
	case errors.Is(err, mbase.ErrChecksumMismatch):
		out = append(out,
			"Checksum validation failed; data may be corrupted",
			"Verify the input was copied correctly")
	}
	if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
		out = append(out, "Input has 0x prefix; try --mode lenient or remove prefix")
	}
	return out
}
