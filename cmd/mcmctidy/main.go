// SPDX-License-Identifier: MIT

// Command mcmctidy reshapes, summarizes and thins MCMC chain files.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 2 // bad input, configuration or I/O failure
)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "mcmctidy:", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
