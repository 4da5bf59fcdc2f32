package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mbase-io/mbase/internal/render"
)

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list supported codecs",
		Flags: []cli.Flag{jsonFlag()},
		Action: func(c *cli.Context) error {
			metas := a.reg.List()
			if c.Bool("json") {
				return printResult(render.FormatJSON, metas)
			}
			fmt.Printf("%-20s %-8s DESCRIPTION\n", "NAME", "PREFIX")
			fmt.Println(strings.Repeat("-", 60))
			for _, m := range metas {
				prefix := "-"
				if m.MultibaseCode != 0 {
					prefix = string(m.MultibaseCode)
				}
				fmt.Printf("%-20s %-8s %s\n", m.Name, prefix, m.Description)
			}
			return nil
		},
	}
}

func (a *app) infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "show codec details",
		ArgsUsage: "CODEC",
		Flags:     []cli.Flag{jsonFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: mbase info CODEC", 1)
			}
			codec, err := a.reg.Get(c.Args().First())
			if err != nil {
				return fail(err)
			}
			m := codec.Meta()
			if c.Bool("json") {
				return printResult(render.FormatJSON, m)
			}
			prefix := "-"
			if m.MultibaseCode != 0 {
				prefix = string(m.MultibaseCode)
			}
			fmt.Printf("Name:        %s\n", m.Name)
			fmt.Printf("Aliases:     %s\n", strings.Join(m.Aliases, ", "))
			fmt.Printf("Alphabet:    %s\n", m.Alphabet)
			fmt.Printf("Multibase:   %s\n", prefix)
			fmt.Printf("Padding:     %s\n", m.Padding)
			fmt.Printf("Case:        %s\n", m.Case)
			fmt.Printf("Description: %s\n", m.Description)
			return nil
		},
	}
}
