package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleTemplateList returns response templates newest first. ?q=
// searches title, content and category; ?category= filters exactly.
func HandleTemplateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		category := strings.TrimSpace(e.Request.URL.Query().Get("category"))

		filter := "1=1"
		params := map[string]any{}
		if query != "" {
			filter += " && (title ~ {:q} || content ~ {:q} || category ~ {:q})"
			params["q"] = query
		}
		if category != "" {
			filter += " && category = {:category}"
			params["category"] = category
		}

		records, err := app.FindRecordsByFilter("response_templates", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("templates: could not query templates: %v", err)
			return dataUnavailable(err)
		}

		return e.JSON(http.StatusOK, records)
	}
}

type templateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// HandleTemplateCreate adds a response template.
func HandleTemplateCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req templateRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Title = strings.TrimSpace(req.Title)
		req.Content = strings.TrimSpace(req.Content)
		if req.Title == "" || req.Content == "" {
			return apis.NewBadRequestError("Title and content are required", nil)
		}

		col, err := app.FindCollectionByNameOrId("response_templates")
		if err != nil {
			log.Printf("templates: could not find response_templates collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		record := core.NewRecord(col)
		record.Set("title", req.Title)
		record.Set("content", req.Content)
		record.Set("category", strings.TrimSpace(req.Category))

		if err := app.Save(record); err != nil {
			log.Printf("templates: could not save template: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleTemplateUpdate replaces a response template's fields.
func HandleTemplateUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("response_templates", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Template not found", err)
		}

		var req templateRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Title = strings.TrimSpace(req.Title)
		req.Content = strings.TrimSpace(req.Content)
		if req.Title == "" || req.Content == "" {
			return apis.NewBadRequestError("Title and content are required", nil)
		}

		record.Set("title", req.Title)
		record.Set("content", req.Content)
		record.Set("category", strings.TrimSpace(req.Category))

		if err := app.Save(record); err != nil {
			log.Printf("templates: could not save template %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleTemplateDelete removes a response template.
func HandleTemplateDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("response_templates", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Template not found", err)
		}

		if err := app.Delete(record); err != nil {
			log.Printf("templates: failed to delete template %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
