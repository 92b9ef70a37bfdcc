// Package output - JSON renderer
package output

import (
	"encoding/json"
	"io"

	"creator-rates/core/types"
)

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, result *types.PricingResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
