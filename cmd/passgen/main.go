package main

import (
	"os"

	"github.com/idilsaglam/passgen/internal/cli"
)

func main() {
	// Flags, config and subcommands are all handled by the CLI runner.
	os.Exit(cli.DefaultApp().Run(os.Args[1:]))
}
