// Package main provides the CLI entrypoint for dynsheet.
//
// dynsheet drives the sheet editor core from the terminal:
//   - validate checks a rows file against the column table
//   - cells prints which cells the grid would let users edit
//   - registry lints, re-emits or dumps the column table
package main

import (
	"os"
)

func main() {
	if err := NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
