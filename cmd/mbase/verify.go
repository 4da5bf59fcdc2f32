package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/urfave/cli/v2"

	"github.com/mbase-io/mbase/internal/render"
)

func (a *app) verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "verify input conforms to a codec",
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

			verr := codec.Validate(string(data), mode)

			if c.Bool("json") {
				res := render.VerifyResult{
					SchemaVersion: 1,
					Valid:         verr == nil,
					Codec:         codec.Meta().Name,
				}
				if verr != nil {
					msg := verr.Error()
					res.Error = &msg
				}
				return printResult(render.FormatJSON, res)
			}
			if verr == nil {
				color.Green.Println("valid")
				return nil
			}
			fmt.Println(color.Red.Sprintf("invalid: %v", verr))
			return cli.Exit("", exitCode(verr))
		},
	}
}
