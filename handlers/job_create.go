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

type jobRequest struct {
	QuoteID       string `json:"quote"`
	Title         string `json:"title"`
	Client        string `json:"client"`
	Address       string `json:"address"`
	ScheduledDate string `json:"scheduled_date"`
	Status        string `json:"status"`
	CrewID        string `json:"crew"`
	Notes         string `json:"notes"`
}

// HandleJobCreate creates a job directly, without going through quote
// conversion. Walk-in and warranty work enters here.
func HandleJobCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req jobRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Title = strings.TrimSpace(req.Title)
		req.Client = strings.TrimSpace(req.Client)
		req.Address = strings.TrimSpace(req.Address)
		if req.Title == "" || req.Client == "" || req.Address == "" {
			return apis.NewBadRequestError("Title, client and address are required", nil)
		}
		if req.Status == "" {
			req.Status = "pending"
		}
		if !services.ValidStatus(services.JobStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown job status", nil)
		}
		if req.CrewID != "" {
			if _, err := app.FindRecordById("crews", req.CrewID); err != nil {
				return apis.NewBadRequestError("Referenced crew does not exist", err)
			}
		}

		jobsCol, err := app.FindCollectionByNameOrId("jobs")
		if err != nil {
			log.Printf("job_create: could not find jobs collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		record := core.NewRecord(jobsCol)
		setJobFields(record, req)

		if err := app.Save(record); err != nil {
			log.Printf("job_create: could not save job: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

func setJobFields(record *core.Record, req jobRequest) {
	record.Set("quote", req.QuoteID)
	record.Set("title", req.Title)
	record.Set("client", req.Client)
	record.Set("address", req.Address)
	record.Set("scheduled_date", req.ScheduledDate)
	record.Set("status", req.Status)
	record.Set("crew", req.CrewID)
	record.Set("notes", strings.TrimSpace(req.Notes))
}
