package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mbase-io/mbase/internal/render"
)

func (a *app) convCommand() *cli.Command {
	return &cli.Command{
		Name:  "conv",
		Usage: "convert between encodings without round-tripping through files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "source codec"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "target codec"},
			inFlag(),
			outFlag(),
			modeFlag("strict"),
			jsonFlag(),
		},
		Action: func(c *cli.Context) error {
			mode, err := parseMode(c.String("mode"))
			if err != nil {
				return fail(err)
			}
			from, err := a.reg.Get(c.String("from"))
			if err != nil {
				return fail(err)
			}
			to, err := a.reg.Get(c.String("to"))
			if err != nil {
				return fail(err)
			}
			data, err := readInput(c.String("in"))
			if err != nil {
				return fail(err)
			}

			decoded, err := from.Decode(string(data), mode)
			if err != nil {
				return fail(err)
			}
			out := to.Encode(decoded)

			if c.Bool("json") {
				return printResult(render.FormatJSON, render.ConvResult{
					SchemaVersion: 1,
					From:          from.Meta().Name,
					To:            to.Meta().Name,
					Output:        out,
					OutputLength:  len(out),
				})
			}
			if err := writeOutput(c.String("out"), []byte(out), true); err != nil {
				return fail(err)
			}
			if c.String("out") == "-" {
				fmt.Println()
			}
			return nil
		},
	}
}
