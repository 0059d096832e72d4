package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatQuoteNumber constructs the quote number string from components.
// Uses "-" as separator so numbers stay URL- and filename-safe.
func formatQuoteNumber(year, sequence int) string {
	return fmt.Sprintf("RC-Q-%d-%03d", year, sequence)
}

// GenerateQuoteNumber creates the next quote number for the given clock.
// Format: RC-Q-{year}-{sequence}, with the sequence restarting each
// calendar year and zero-padded to 3 digits.
func GenerateQuoteNumber(app *pocketbase.PocketBase, now time.Time) string {
	year := now.Year()
	prefix := fmt.Sprintf("RC-Q-%d-", year)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or no matches yet; start the sequence at 1.
		existing = nil
	}

	return formatQuoteNumber(year, len(existing)+1)
}
