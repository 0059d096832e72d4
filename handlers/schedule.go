package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// HandleScheduleList returns schedule events overlapping the requested
// window (?start= and ?end=, RFC3339 or date-only). Without a window the
// whole calendar is returned.
func HandleScheduleList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		start := strings.TrimSpace(e.Request.URL.Query().Get("start"))
		end := strings.TrimSpace(e.Request.URL.Query().Get("end"))

		filter := "1=1"
		params := map[string]any{}
		if start != "" {
			filter += " && end_date >= {:start}"
			params["start"] = start
		}
		if end != "" {
			filter += " && start_date <= {:end}"
			params["end"] = end
		}

		records, err := app.FindRecordsByFilter("schedule_events", filter, "start_date", 0, 0, params)
		if err != nil {
			log.Printf("schedule: could not query events: %v", err)
			return dataUnavailable(err)
		}

		return e.JSON(http.StatusOK, records)
	}
}

type scheduleEventRequest struct {
	JobID       string `json:"job"`
	CrewID      string `json:"crew"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	AllDay      bool   `json:"all_day"`
	Status      string `json:"status"`
}

// HandleScheduleCreate adds a calendar event. Events must not end
// before they start; a rejected event never reaches the store.
func HandleScheduleCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req scheduleEventRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			return apis.NewBadRequestError("Title is required", nil)
		}
		if req.StartDate == "" || req.EndDate == "" {
			return apis.NewBadRequestError("Start and end dates are required", nil)
		}
		if req.EndDate < req.StartDate {
			return apis.NewBadRequestError("End date must not be before start date", nil)
		}
		if req.Status == "" {
			req.Status = "scheduled"
		}
		if !services.ValidStatus(services.EventStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown event status", nil)
		}

		eventsCol, err := app.FindCollectionByNameOrId("schedule_events")
		if err != nil {
			log.Printf("schedule: could not find schedule_events collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		record := core.NewRecord(eventsCol)
		record.Set("job", req.JobID)
		record.Set("crew", req.CrewID)
		record.Set("title", req.Title)
		record.Set("description", strings.TrimSpace(req.Description))
		record.Set("start_date", req.StartDate)
		record.Set("end_date", req.EndDate)
		record.Set("all_day", req.AllDay)
		record.Set("status", req.Status)

		if err := app.Save(record); err != nil {
			log.Printf("schedule: could not save event: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleScheduleDelete removes a calendar event.
func HandleScheduleDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("schedule_events", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Event not found", err)
		}

		if err := app.Delete(record); err != nil {
			log.Printf("schedule: failed to delete event %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
