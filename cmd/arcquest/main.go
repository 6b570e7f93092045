package main

import (
	"os"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
