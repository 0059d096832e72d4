package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// HandleLeadImportValidate parses an uploaded leads CSV (multipart field
// "file") and reports per-row validation results without writing
// anything. The frontend shows the error report and then commits.
func HandleLeadImportValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return apis.NewBadRequestError("Missing file upload", err)
		}
		defer file.Close()

		result, err := services.ValidateLeadImport(file)
		if err != nil {
			return apis.NewBadRequestError(err.Error(), err)
		}

		return e.JSON(http.StatusOK, result)
	}
}

// HandleLeadImportCommit re-validates the uploaded CSV and inserts every
// valid row. Rows that failed validation are skipped, mirroring what the
// validate step reported.
func HandleLeadImportCommit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return apis.NewBadRequestError("Missing file upload", err)
		}
		defer file.Close()

		result, err := services.ValidateLeadImport(file)
		if err != nil {
			return apis.NewBadRequestError(err.Error(), err)
		}

		created, err := services.CommitLeadImport(app, result.ParsedRows)
		if err != nil {
			log.Printf("lead_import: commit failed: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Import failed. No leads were created.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"created":      created,
			"skipped_rows": result.ErrorRows,
		})
	}
}
