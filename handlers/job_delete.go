package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleJobDelete removes a job. Schedule events pointing at it keep
// their weak reference so the calendar history stays intact.
func HandleJobDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")
		if jobID == "" {
			return apis.NewBadRequestError("Missing job ID", nil)
		}

		record, err := app.FindRecordById("jobs", jobID)
		if err != nil {
			log.Printf("job_delete: could not find job %s: %v", jobID, err)
			return apis.NewNotFoundError("Job not found", err)
		}

		if err := app.Delete(record); err != nil {
			log.Printf("job_delete: failed to delete job %s: %v", jobID, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
