package main

import (
	"os"

	"github.com/quantakit/quanta/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own errors; the ExitError carries the code.
		os.Exit(cli.GetExitCode(err))
	}
}
