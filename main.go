// ./main.go
package main

import (
	"github.com/barelint/barelint/cmd"
)

// main is the entry point for the barelint CLI.
func main() {
	// Command-line parsing, configuration, and execution all live in cmd.
	cmd.Execute()
}
