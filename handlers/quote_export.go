package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

const exportDateLayout = "January 2, 2006"

// HandleQuoteExportPDF renders a quote as a downloadable PDF document.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quote, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Quote not found", err)
		}

		data := services.QuoteExportData{
			Number:      quote.GetString("number"),
			Title:       quote.GetString("title"),
			RoofType:    quote.GetString("roof_type"),
			AreaSqFt:    quote.GetFloat("area_sq_ft"),
			CreatedDate: quote.GetDateTime("created").Time().Format(exportDateLayout),
			Notes:       quote.GetString("notes"),
		}
		if material, ok := services.MaterialByKey(quote.GetString("material")); ok {
			data.Material = material.Label
		}
		if validUntil := quote.GetDateTime("valid_until").Time(); !validUntil.IsZero() {
			data.ValidUntil = validUntil.Format(exportDateLayout)
		}
		if leadID := quote.GetString("lead"); leadID != "" {
			if lead, err := app.FindRecordById("leads", leadID); err == nil {
				data.ClientName = lead.GetString("name")
				data.ClientEmail = lead.GetString("email")
				data.ClientPhone = lead.GetString("phone")
				data.Address = lead.GetString("address")
			}
		}

		// Re-derive the breakdown when the estimator inputs were stored,
		// otherwise show the full amount as a single materials line.
		if breakdown, ok := services.EstimateFromInput(
			quote.GetString("material"),
			fmt.Sprintf("%g", quote.GetFloat("area_sq_ft")),
		); ok {
			data.Breakdown = breakdown
		} else {
			data.Breakdown = services.Estimate{
				MaterialCost: quote.GetFloat("amount"),
				Total:        quote.GetFloat("amount"),
			}
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export: could not generate PDF for quote %s: %v", quote.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		filename := fmt.Sprintf("quote_%s.pdf", quote.GetString("number"))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		e.Response.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))

		_, err = e.Response.Write(pdfBytes)
		return err
	}
}
