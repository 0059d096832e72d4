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

// HandleJobUpdate replaces a job's editable fields.
func HandleJobUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("jobs", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Job not found", err)
		}

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
			req.Status = record.GetString("status")
		}
		if !services.ValidStatus(services.JobStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown job status", nil)
		}
		if req.CrewID != "" {
			if _, err := app.FindRecordById("crews", req.CrewID); err != nil {
				return apis.NewBadRequestError("Referenced crew does not exist", err)
			}
		}

		setJobFields(record, req)

		if err := app.Save(record); err != nil {
			log.Printf("job_update: could not save job %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleJobStatus sets only the job's status.
func HandleJobStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("jobs", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Job not found", err)
		}

		var req statusRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}
		if !services.ValidStatus(services.JobStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown job status", nil)
		}

		record.Set("status", req.Status)
		if err := app.Save(record); err != nil {
			log.Printf("job_status: could not save job %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}
