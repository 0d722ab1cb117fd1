package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/mfroeh/gofa/casefile"
)

type checkCmd struct {
	Files []string `arg:"" name:"file" help:"Case files, either the case DSL or YAML (.yaml, .yml)." type:"existingfile"`
}

func (c *checkCmd) Run(ctx *kong.Context) error {
	total, failed := 0, 0
	for _, path := range c.Files {
		cases, err := casefile.Load(path)
		if err != nil {
			return err
		}

		for _, tc := range cases {
			total++
			failures := tc.Check()
			if len(failures) == 0 {
				continue
			}

			failed++
			for _, f := range failures {
				rejectedColor.Fprint(ctx.Stdout, "FAIL ")
				fmt.Fprintln(ctx.Stdout, f)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, total)
	}
	acceptedColor.Fprintf(ctx.Stdout, "ok: %d cases\n", total)
	return nil
}
