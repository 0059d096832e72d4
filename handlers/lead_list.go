package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleLeadList returns leads newest first, optionally narrowed by a
// free-text search (?q=) over name/email/address and a status filter
// (?status=).
func HandleLeadList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		status := strings.TrimSpace(e.Request.URL.Query().Get("status"))

		filter := "1=1"
		params := map[string]any{}
		if searchQuery != "" {
			filter += " && (name ~ {:q} || email ~ {:q} || address ~ {:q})"
			params["q"] = searchQuery
		}
		if status != "" {
			filter += " && status = {:status}"
			params["status"] = status
		}

		records, err := app.FindRecordsByFilter("leads", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("lead_list: could not query leads: %v", err)
			return dataUnavailable(err)
		}

		return e.JSON(http.StatusOK, records)
	}
}

// HandleLeadView returns a single lead by id.
func HandleLeadView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("leads", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Lead not found", err)
		}
		return e.JSON(http.StatusOK, record)
	}
}
