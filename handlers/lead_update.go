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

// HandleLeadUpdate replaces a lead's editable fields.
func HandleLeadUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("leads", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Lead not found", err)
		}

		var req leadRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apis.NewBadRequestError("Name is required", nil)
		}
		if req.Status == "" {
			req.Status = record.GetString("status")
		}
		if !services.ValidStatus(services.LeadStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown lead status", nil)
		}

		setLeadFields(record, req)

		if err := app.Save(record); err != nil {
			log.Printf("lead_update: could not save lead %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandleLeadStatus sets only the lead's funnel status. Any known status
// is accepted; the funnel order is advisory, not enforced.
func HandleLeadStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("leads", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Lead not found", err)
		}

		var req statusRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}
		if !services.ValidStatus(services.LeadStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown lead status", nil)
		}

		record.Set("status", req.Status)
		if err := app.Save(record); err != nil {
			log.Printf("lead_status: could not save lead %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}
