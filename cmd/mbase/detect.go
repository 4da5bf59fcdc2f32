package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/urfave/cli/v2"

	"github.com/mbase-io/mbase"
	"github.com/mbase-io/mbase/internal/render"
)

func (a *app) detectCommand() *cli.Command {
	return &cli.Command{
		Name:  "detect",
		Usage: "detect likely codec(s) for input",
		Flags: []cli.Flag{
			inFlag(),
			jsonFlag(),
			&cli.IntFlag{Name: "top", Value: 5, Usage: "number of candidates to show"},
			&cli.StringFlag{Name: "format", Value: "json",
				Usage: "machine output format: json, cbor or msgpack"},
		},
		Action: func(c *cli.Context) error {
			data, err := readInput(c.String("in"))
			if err != nil {
				return fail(err)
			}
			trimmed := strings.TrimSpace(string(data))

			eng := mbase.NewEngine(a.reg, mbase.EngineOptions{Logger: a.log})
			cands := eng.Detect(c.Context, trimmed, c.Int("top"))
			if cands == nil {
				cands = []mbase.DetectCandidate{}
			}
			res := render.DetectResult{
				SchemaVersion: 1,
				Candidates:    cands,
				InputPreview:  preview(trimmed),
			}

			if c.Bool("json") || c.IsSet("format") {
				f, err := render.ParseFormat(c.String("format"))
				if err != nil {
					return fail(err)
				}
				b, err := render.Marshal(f, res)
				if err != nil {
					return fail(err)
				}
				if _, err := os.Stdout.Write(b); err != nil {
					return fail(&ioError{err: err})
				}
				return nil
			}

			fmt.Printf("Input: %s\n\n", res.InputPreview)
			if len(cands) == 0 {
				fmt.Println("No likely codecs detected.")
				return nil
			}
			fmt.Printf("%-16s %-8s REASONS\n", "CODEC", "CONF")
			fmt.Println(strings.Repeat("-", 60))
			for _, cand := range cands {
				conf := fmt.Sprintf("%.0f%%", cand.Confidence*100)
				fmt.Printf("%-16s %-8s %s\n", cand.Codec, conf, strings.Join(cand.Reasons, "; "))
				for _, w := range cand.Warnings {
					fmt.Printf("%16s %s\n", "", color.Yellow.Sprintf("warning: %s", w))
				}
			}
			return nil
		},
	}
}
