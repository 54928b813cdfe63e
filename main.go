/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/iand/lifespan/report"
)

func main() {
	app := &cli.App{
		Name:     "lifespan",
		HelpName: "lifespan",
		Usage:    "Analyse the longevity of U.S. presidents",
		Commands: []*cli.Command{
			report.Command,
			report.StatsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
