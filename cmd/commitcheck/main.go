// Package main provides the commitcheck binary entry point.
// commitcheck validates a commit message file against the CATEGORY-NN tag
// convention and is meant to run from a git commit-msg hook.
package main

import (
	"os"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const appName = "commitcheck"

// Exit codes.
const (
	ExitAccepted = 0
	ExitRejected = 1
	ExitPanic    = 2
)

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	os.Exit(a.run(os.Args[1:]))
}
