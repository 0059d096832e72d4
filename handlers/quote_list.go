package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteList returns quotes newest first, optionally filtered by
// status (?status=) or lead (?lead=).
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		status := strings.TrimSpace(e.Request.URL.Query().Get("status"))
		leadID := strings.TrimSpace(e.Request.URL.Query().Get("lead"))

		filter := "1=1"
		params := map[string]any{}
		if status != "" {
			filter += " && status = {:status}"
			params["status"] = status
		}
		if leadID != "" {
			filter += " && lead = {:lead}"
			params["lead"] = leadID
		}

		records, err := app.FindRecordsByFilter("quotes", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			return dataUnavailable(err)
		}

		return e.JSON(http.StatusOK, records)
	}
}

// HandleQuoteView returns a single quote by id.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Quote not found", err)
		}
		return e.JSON(http.StatusOK, record)
	}
}
