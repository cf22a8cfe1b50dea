// Package main provides the sightread CLI tool.
//
// Usage:
//
//	sightread <command> [flags]
//
// Commands:
//
//	generate - Generate a two-staff sight-reading exercise
//	scales   - List the pitch table of a voice
//	window   - Preview the pitch window a range selection resolves to
package main

import (
	"fmt"
	"os"

	"github.com/Conceptual-Machines/sightread-api/cmd/sightread/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
