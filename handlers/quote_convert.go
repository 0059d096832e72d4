package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteConvert turns an accepted quote into a pending job. The
// client name and address are copied from the quote's lead so the job
// survives later lead edits or deletion.
func HandleQuoteConvert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quote, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Quote not found", err)
		}
		if quote.GetString("status") != "accepted" {
			return apis.NewBadRequestError("Only accepted quotes can be converted to jobs", nil)
		}

		existing, _ := app.FindFirstRecordByFilter(
			"jobs",
			"quote = {:quote}",
			map[string]any{"quote": quote.Id},
		)
		if existing != nil {
			return apis.NewBadRequestError("Quote was already converted to a job", nil)
		}

		client := "Unknown client"
		address := ""
		if leadID := quote.GetString("lead"); leadID != "" {
			if lead, err := app.FindRecordById("leads", leadID); err == nil {
				client = lead.GetString("name")
				address = lead.GetString("address")
			}
		}
		if address == "" {
			address = "Address pending"
		}

		jobsCol, err := app.FindCollectionByNameOrId("jobs")
		if err != nil {
			log.Printf("quote_convert: could not find jobs collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		job := core.NewRecord(jobsCol)
		job.Set("quote", quote.Id)
		job.Set("title", quote.GetString("title"))
		job.Set("client", client)
		job.Set("address", address)
		job.Set("status", "pending")
		job.Set("notes", fmt.Sprintf("Converted from quote %s", quote.GetString("number")))

		if err := app.Save(job); err != nil {
			log.Printf("quote_convert: could not save job for quote %s: %v", quote.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, job)
	}
}
