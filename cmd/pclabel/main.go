// Package main is the pclabel command.
package main

import (
	"os"

	"go.viam.com/pclabel/cli"
	"go.viam.com/pclabel/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.Global().Error(err)
		os.Exit(1)
	}
}
