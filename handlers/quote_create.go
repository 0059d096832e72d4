package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

type quoteRequest struct {
	LeadID      string  `json:"lead"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	ValidUntil  string  `json:"valid_until"`
	Notes       string  `json:"notes"`
}

// HandleQuoteCreate creates a quote with a manually entered amount, for
// work priced outside the estimator. Estimator-driven quotes go through
// HandleQuoteGenerate instead.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
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
			req.Status = "draft"
		}
		if !services.ValidStatus(services.QuoteStatuses, req.Status) {
			return apis.NewBadRequestError("Unknown quote status", nil)
		}
		if req.LeadID != "" {
			if _, err := app.FindRecordById("leads", req.LeadID); err != nil {
				return apis.NewBadRequestError("Referenced lead does not exist", err)
			}
		}

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: could not find quotes collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		record := core.NewRecord(quotesCol)
		record.Set("lead", req.LeadID)
		record.Set("number", services.GenerateQuoteNumber(app, time.Now().UTC()))
		record.Set("title", req.Title)
		record.Set("description", strings.TrimSpace(req.Description))
		record.Set("amount", req.Amount)
		record.Set("status", req.Status)
		record.Set("valid_until", req.ValidUntil)
		record.Set("notes", strings.TrimSpace(req.Notes))

		if err := app.Save(record); err != nil {
			log.Printf("quote_create: could not save quote: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}
