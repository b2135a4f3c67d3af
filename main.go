package main

import (
	"fmt"
	"os"

	"github.com/dslh/daterange/cmd"
	"github.com/dslh/daterange/internal/exitcode"
	"github.com/dslh/daterange/internal/output"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", output.Red("Error:"), err)
		os.Exit(exitcode.ExitCode(err))
	}
}
