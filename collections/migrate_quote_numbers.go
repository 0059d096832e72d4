package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"roofcrm/services"
)

// MigrateQuoteNumbers finds quotes saved before quote numbering existed
// (empty number field) and assigns each the next number in sequence,
// keyed off the quote's own creation year. Safe to call on every
// startup -- returns early if nothing to migrate.
func MigrateQuoteNumbers(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotes collection: %w", err)
	}

	unnumbered, err := app.FindRecordsByFilter(
		quotesCol,
		"number = ''",
		"created",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query unnumbered quotes: %w", err)
	}

	if len(unnumbered) == 0 {
		return nil
	}

	log.Printf("migrate: found %d quote(s) without a number -- assigning...\n", len(unnumbered))

	for _, quote := range unnumbered {
		created := quote.GetDateTime("created").Time()
		quote.Set("number", services.GenerateQuoteNumber(app, created))
		if err := app.Save(quote); err != nil {
			log.Printf("migrate: failed to number quote %q (%s): %v\n", quote.GetString("title"), quote.Id, err)
			continue
		}
	}

	log.Printf("migrate: quote numbering complete.\n")
	return nil
}
