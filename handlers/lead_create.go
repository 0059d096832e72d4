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

type leadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"`
	Source  string `json:"source"`
	Notes   string `json:"notes"`
}

// HandleLeadCreate creates a lead from intake-form input. New leads
// default to the "new" status.
func HandleLeadCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req leadRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apis.NewBadRequestError("Name is required", nil)
		}
		if req.Status == "" {
			req.Status = "new"
		}
		if !services.ValidStatus(services.LeadStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown lead status", nil)
		}

		leadsCol, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("lead_create: could not find leads collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		record := core.NewRecord(leadsCol)
		setLeadFields(record, req)

		if err := app.Save(record); err != nil {
			log.Printf("lead_create: could not save lead: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// setLeadFields sets all lead fields on a record from request data.
func setLeadFields(record *core.Record, req leadRequest) {
	record.Set("name", strings.TrimSpace(req.Name))
	record.Set("email", strings.TrimSpace(req.Email))
	record.Set("phone", strings.TrimSpace(req.Phone))
	record.Set("address", strings.TrimSpace(req.Address))
	record.Set("status", req.Status)
	record.Set("source", strings.TrimSpace(req.Source))
	record.Set("notes", strings.TrimSpace(req.Notes))
}
