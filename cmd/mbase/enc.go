package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mbase-io/mbase/internal/render"
)

func (a *app) encCommand() *cli.Command {
	return &cli.Command{
		Name:  "enc",
		Usage: "encode bytes to text",
		Flags: []cli.Flag{
			codecFlag("base64"),
			inFlag(),
			outFlag(),
			&cli.BoolFlag{Name: "multibase", Usage: "emit multibase prefix"},
			&cli.BoolFlag{Name: "all", Usage: "show encoding with all codecs"},
			jsonFlag(),
		},
		Action: func(c *cli.Context) error {
			data, err := readInput(c.String("in"))
			if err != nil {
				return fail(err)
			}
			if c.Bool("all") {
				return a.encodeAll(c, data)
			}

			codec, err := a.reg.Get(c.String("codec"))
			if err != nil {
				return fail(err)
			}
			meta := codec.Meta()
			encoded := codec.Encode(data)
			var prefix *string
			if c.Bool("multibase") && meta.MultibaseCode != 0 {
				p := string(meta.MultibaseCode)
				prefix = &p
				encoded = p + encoded
			}

			if c.Bool("json") {
				return printResult(render.FormatJSON, render.EncodeResult{
					Codec:           meta.Name,
					InputLength:     len(data),
					Output:          encoded,
					OutputLength:    len(encoded),
					MultibasePrefix: prefix,
				})
			}
			if err := writeOutput(c.String("out"), []byte(encoded), true); err != nil {
				return fail(err)
			}
			if c.String("out") == "-" {
				fmt.Println()
			}
			return nil
		},
	}
}

func (a *app) encodeAll(c *cli.Context, data []byte) error {
	if c.Bool("json") {
		res := render.EncodeAllResult{InputLength: len(data)}
		for _, cd := range a.reg.Codecs() {
			res.Results = append(res.Results, render.EncodeAllEntry{
				Codec:  cd.Meta().Name,
				Output: cd.Encode(data),
			})
		}
		return printResult(render.FormatJSON, res)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-18s ENCODED\n", "CODEC")
	b.WriteString(strings.Repeat("-", 70) + "\n")
	for _, cd := range a.reg.Codecs() {
		enc := cd.Encode(data)
		if len(enc) > 50 {
			enc = enc[:47] + "..."
		}
		fmt.Fprintf(&b, "%-18s %s\n", cd.Meta().Name, enc)
	}
	if err := writeOutput(c.String("out"), []byte(b.String()), true); err != nil {
		return fail(err)
	}
	return nil
}
