package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete removes a quote. Jobs converted from it are not
// touched; they stand on their own once scheduled.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return apis.NewBadRequestError("Missing quote ID", nil)
		}

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_delete: could not find quote %s: %v", quoteID, err)
			return apis.NewNotFoundError("Quote not found", err)
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quote_delete: failed to delete quote %s: %v", quoteID, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
