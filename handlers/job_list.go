package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleJobList returns jobs sorted by scheduled date, optionally
// filtered by status (?status=) or crew (?crew=).
func HandleJobList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		status := strings.TrimSpace(e.Request.URL.Query().Get("status"))
		crewID := strings.TrimSpace(e.Request.URL.Query().Get("crew"))

		filter := "1=1"
		params := map[string]any{}
		if status != "" {
			filter += " && status = {:status}"
			params["status"] = status
		}
		if crewID != "" {
			filter += " && crew = {:crew}"
			params["crew"] = crewID
		}

		records, err := app.FindRecordsByFilter("jobs", filter, "scheduled_date", 0, 0, params)
		if err != nil {
			log.Printf("job_list: could not query jobs: %v", err)
			return dataUnavailable(err)
		}

		return e.JSON(http.StatusOK, records)
	}
}

// HandleJobView returns a single job by id.
func HandleJobView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("jobs", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Job not found", err)
		}
		return e.JSON(http.StatusOK, record)
	}
}
