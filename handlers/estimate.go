package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// HandlePricingMaterials returns the pricing catalog plus roof type
// options for the quote form.
func HandlePricingMaterials(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"materials":  services.RoofingMaterials,
			"roof_types": services.RoofTypeOptions,
		})
	}
}

type estimateRequest struct {
	Material string `json:"material"`
	Area     string `json:"area"`
}

// HandleEstimatePreview computes a live cost estimate while the quote
// form is being filled in. Partial or bad input is normal here, so the
// response always succeeds: the breakdown is zero and computable=false
// until both fields resolve.
func HandleEstimatePreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req estimateRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		estimate, ok := services.EstimateFromInput(req.Material, req.Area)

		return e.JSON(http.StatusOK, map[string]any{
			"estimate":   estimate,
			"computable": ok,
		})
	}
}

type quoteGenerateRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Address     string `json:"address"`
	RoofType    string `json:"roof_type"`
	Material    string `json:"material"`
	Area        string `json:"area"`
	Notes       string `json:"notes"`
}

// HandleQuoteGenerate turns a filled-in quote form into a stored quote.
// The client is matched to an existing lead by email, or a new lead is
// created, in the same transaction as the quote itself.
func HandleQuoteGenerate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req quoteGenerateRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.ClientName = strings.TrimSpace(req.ClientName)
		req.ClientEmail = strings.TrimSpace(req.ClientEmail)

		if req.ClientName == "" {
			return apis.NewBadRequestError("Client name is required", nil)
		}

		estimate, ok := services.EstimateFromInput(req.Material, req.Area)
		if !ok {
			return apis.NewBadRequestError("Select a material and enter a numeric roof area", nil)
		}

		material, _ := services.MaterialByKey(req.Material)
		area, _ := services.ParseArea(req.Area)

		leadsCol, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("quote_generate: could not find leads collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}
		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_generate: could not find quotes collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		number := services.GenerateQuoteNumber(app, time.Now().UTC())

		var quote *core.Record
		err = app.RunInTransaction(func(txApp core.App) error {
			var lead *core.Record
			if req.ClientEmail != "" {
				lead, _ = txApp.FindFirstRecordByFilter(
					"leads",
					"email = {:email}",
					map[string]any{"email": req.ClientEmail},
				)
			}
			if lead == nil {
				lead = core.NewRecord(leadsCol)
				lead.Set("name", req.ClientName)
				lead.Set("email", req.ClientEmail)
				lead.Set("phone", strings.TrimSpace(req.ClientPhone))
				lead.Set("address", strings.TrimSpace(req.Address))
				lead.Set("status", "new")
				lead.Set("source", "Other")
				if err := txApp.Save(lead); err != nil {
					return fmt.Errorf("save lead: %w", err)
				}
			}

			quote = core.NewRecord(quotesCol)
			quote.Set("lead", lead.Id)
			quote.Set("number", number)
			quote.Set("title", fmt.Sprintf("%s for %s", material.Label, req.ClientName))
			quote.Set("amount", estimate.Total)
			quote.Set("status", "draft")
			quote.Set("material", req.Material)
			quote.Set("roof_type", req.RoofType)
			quote.Set("area_sq_ft", area)
			quote.Set("notes", strings.TrimSpace(req.Notes))
			if err := txApp.Save(quote); err != nil {
				return fmt.Errorf("save quote: %w", err)
			}
			return nil
		})
		if err != nil {
			log.Printf("quote_generate: transaction failed: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"quote":    quote,
			"estimate": estimate,
		})
	}
}
