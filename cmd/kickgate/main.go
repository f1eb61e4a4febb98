// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command kickgate runs, renders and inspects conveyor logic puzzles.
package main

import (
	"fmt"
	"os"

	"github.com/db47h/kickgate/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kickgate:", err)
		os.Exit(cli.ExitCode(err))
	}
}
