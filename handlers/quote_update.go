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

// HandleQuoteUpdate replaces a quote's editable fields. The quote number
// is assigned at creation and never changes.
func HandleQuoteUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Quote not found", err)
		}

		var req quoteRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			return apis.NewBadRequestError("Title is required", nil)
		}
		if req.Amount < 0 {
			return apis.NewBadRequestError("Amount must not be negative", nil)
		}
		if req.Status == "" {
			req.Status = record.GetString("status")
		}
		if !services.ValidStatus(services.QuoteStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown quote status", nil)
		}
		if req.LeadID != "" {
			if _, err := app.FindRecordById("leads", req.LeadID); err != nil {
				return apis.NewBadRequestError("Referenced lead does not exist", err)
			}
			record.Set("lead", req.LeadID)
		}

		record.Set("title", req.Title)
		record.Set("description", strings.TrimSpace(req.Description))
		record.Set("amount", req.Amount)
		record.Set("status", req.Status)
		record.Set("valid_until", req.ValidUntil)
		record.Set("notes", strings.TrimSpace(req.Notes))

		if err := app.Save(record); err != nil {
			log.Printf("quote_update: could not save quote %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleQuoteStatus sets only the quote's status.
func HandleQuoteStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Quote not found", err)
		}

		var req statusRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}
		if !services.ValidStatus(services.QuoteStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown quote status", nil)
		}

		record.Set("status", req.Status)
		if err := app.Save(record); err != nil {
			log.Printf("quote_status: could not save quote %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}
