// Package output renders pricing results for humans and machines.
// The API is only responsible for serialization; this package serves
// the CLI.
package output

import (
	"io"

	"creator-rates/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable breakdown
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the quote
	Render(w io.Writer, result *types.PricingResult) error
}

// New returns the formatter for a format name, defaulting to CLI
func New(format Format, showLayers bool) Formatter {
	switch format {
	case FormatJSON:
		return &jsonFormatter{}
	default:
		return &cliFormatter{showLayers: showLayers}
	}
}
