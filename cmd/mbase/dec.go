package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/mbase-io/mbase"
	"github.com/mbase-io/mbase/internal/render"
)

func (a *app) decCommand() *cli.Command {
	return &cli.Command{
		Name:  "dec",
		Usage: "decode text to bytes",
		Flags: []cli.Flag{
			codecFlag("base64"),
			inFlag(),
			outFlag(),
			modeFlag("strict"),
			&cli.BoolFlag{Name: "force", Usage: "write raw binary even to a terminal"},
			&cli.BoolFlag{Name: "multibase", Usage: "consume multibase prefix to pick the codec"},
			&cli.BoolFlag{Name: "all", Usage: "try all codecs and show successful decodes"},
			jsonFlag(),
		},
		Action: func(c *cli.Context) error {
			mode, err := parseMode(c.String("mode"))
			if err != nil {
				return fail(err)
			}
			data, err := readInput(c.String("in"))
			if err != nil {
				return fail(err)
			}
			text := string(data)
			if c.Bool("all") {
				return a.decodeAll(c, text, mode)
			}

			codecName := c.String("codec")
			var prefix *string
			if c.Bool("multibase") && text != "" {
				first, size := utf8.DecodeRuneInString(text)
				if name, ok := a.reg.MultibaseMap()[first]; ok {
					codecName = name
					text = text[size:]
					p := string(first)
					prefix = &p
				}
			}

			codec, err := a.reg.Get(codecName)
			if err != nil {
				return fail(err)
			}
			decoded, err := codec.Decode(text, mode)
			if err != nil {
				return fail(err)
			}

			if c.Bool("json") {
				return printResult(render.FormatJSON, render.DecodeResult{
					Codec:           codec.Meta().Name,
					Input:           strings.TrimSpace(text),
					OutputLength:    len(decoded),
					OutputHex:       hex.EncodeToString(decoded),
					OutputText:      printableText(decoded),
					MultibasePrefix: prefix,
				})
			}
			if err := writeOutput(c.String("out"), decoded, c.Bool("force")); err != nil {
				return fail(err)
			}
			return nil
		},
	}
}

func (a *app) decodeAll(c *cli.Context, text string, mode mbase.Mode) error {
	if c.Bool("json") {
		res := render.DecodeAllResult{Input: strings.TrimSpace(text)}
		for _, cd := range a.reg.Codecs() {
			entry := render.DecodeAllEntry{Codec: cd.Meta().Name}
			if decoded, err := cd.Decode(text, mode); err != nil {
				msg := err.Error()
				entry.Error = &msg
			} else {
				n := len(decoded)
				h := hex.EncodeToString(decoded)
				entry.OutputLength = &n
				entry.OutputHex = &h
				entry.OutputText = printableText(decoded)
			}
			res.Results = append(res.Results, entry)
		}
		return printResult(render.FormatJSON, res)
	}

	fmt.Printf("%-18s DECODED (as text, or hex if binary)\n", "CODEC")
	fmt.Println(strings.Repeat("-", 70))
	successes := 0
	for _, cd := range a.reg.Codecs() {
		decoded, err := cd.Decode(text, mode)
		if err != nil {
			continue
		}
		successes++
		fmt.Printf("%-18s %s\n", cd.Meta().Name, formatDecoded(decoded))
	}
	if successes == 0 {
		fmt.Println("(no codec could decode the input)")
	}
	return nil
}

func formatDecoded(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}
	if s := printableText(data); s != nil {
		if len(*s) > 50 {
			return fmt.Sprintf("%q", (*s)[:47]+"...")
		}
		return fmt.Sprintf("%q", *s)
	}
	n := min(len(data), 25)
	h := hex.EncodeToString(data[:n])
	if len(data) > 25 {
		return fmt.Sprintf("[%s...] (%d bytes)", h, len(data))
	}
	return fmt.Sprintf("[%s] (%d bytes)", h, len(data))
}
