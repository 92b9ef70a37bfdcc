// Package main is the entry point for the creator-rates CLI.
package main

import (
	"os"

	"creator-rates/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
