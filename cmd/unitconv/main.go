// Package main provides the unitconv CLI, a front end for the unit
// conversion and auto-ranging library in pkg/units.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
