package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleLeadDelete removes a lead. Quotes referencing it keep their
// weak reference; they are priced documents in their own right.
func HandleLeadDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadID := e.Request.PathValue("id")
		if leadID == "" {
			return apis.NewBadRequestError("Missing lead ID", nil)
		}

		record, err := app.FindRecordById("leads", leadID)
		if err != nil {
			log.Printf("lead_delete: could not find lead %s: %v", leadID, err)
			return apis.NewNotFoundError("Lead not found", err)
		}

		if err := app.Delete(record); err != nil {
			log.Printf("lead_delete: failed to delete lead %s: %v", leadID, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
