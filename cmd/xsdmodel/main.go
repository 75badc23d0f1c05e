// Command xsdmodel compiles XML Schema documents into typed object models.
package main

import (
	"context"
	"os"

	"github.com/erraggy/xsdmodel/internal/cliutil"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.command().Run(context.Background(), os.Args); err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
