// Package outwriter has output and writer logic for exports.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

// OutWriter provides a unified interface for all export operations.
// It encapsulates the output formats and gives commands a clean API.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteFacts exports flattened month facts using the configured format.
func (ow *OutWriter) WriteFacts(facts []schema.NormalizedFact, cfg *contract.Config) error {
	return WriteFactResults(facts, cfg)
}

// WriteValues exports value data points using the configured format.
func (ow *OutWriter) WriteValues(values []schema.ValueRecord, cfg *contract.Config) error {
	return WriteValueResults(values, cfg)
}

// getMaxTableNameWidth calculates the maximum width for project names in
// table output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns, label and table borders.
	available := termWidth - 60
	if available < 15 {
		return 15
	}
	if available > 40 {
		return 40
	}
	return available
}
