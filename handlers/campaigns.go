package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCampaignList returns all automated campaigns.
func HandleCampaignList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("automated_campaigns", "1=1", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("campaigns: could not query campaigns: %v", err)
			return dataUnavailable(err)
		}
		return e.JSON(http.StatusOK, records)
	}
}

type campaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Trigger     string `json:"trigger"`
	Status      string `json:"status"`
}

// HandleCampaignCreate adds an automated campaign. New campaigns start
// paused until explicitly activated.
func HandleCampaignCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req campaignRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apis.NewBadRequestError("Name is required", nil)
		}
		if req.Status == "" {
			req.Status = "paused"
		}
		if req.Status != "active" && req.Status != "paused" {
			return apis.NewBadRequestError("Unknown campaign status", nil)
		}

		col, err := app.FindCollectionByNameOrId("automated_campaigns")
		if err != nil {
			log.Printf("campaigns: could not find automated_campaigns collection: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		record := core.NewRecord(col)
		record.Set("name", req.Name)
		record.Set("description", strings.TrimSpace(req.Description))
		record.Set("trigger", strings.TrimSpace(req.Trigger))
		record.Set("status", req.Status)

		if err := app.Save(record); err != nil {
			log.Printf("campaigns: could not save campaign: %v", err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleCampaignUpdate replaces a campaign's editable fields.
func HandleCampaignUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("automated_campaigns", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Campaign not found", err)
		}

		var req campaignRequest
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
		if req.Status != "active" && req.Status != "paused" {
			return apis.NewBadRequestError("Unknown campaign status", nil)
		}

		record.Set("name", req.Name)
		record.Set("description", strings.TrimSpace(req.Description))
		record.Set("trigger", strings.TrimSpace(req.Trigger))
		record.Set("status", req.Status)

		if err := app.Save(record); err != nil {
			log.Printf("campaigns: could not save campaign %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleCampaignStatus toggles a campaign between active and paused.
func HandleCampaignStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("automated_campaigns", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Campaign not found", err)
		}

		var req statusRequest
		if err := e.BindBody(&req); err != nil {
			return apis.NewBadRequestError("Invalid request body", err)
		}
		if req.Status != "active" && req.Status != "paused" {
			return apis.NewBadRequestError("Unknown campaign status", nil)
		}

		record.Set("status", req.Status)
		if err := app.Save(record); err != nil {
			log.Printf("campaigns: could not save campaign %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, record)
	}
}

// HandleCampaignDelete removes an automated campaign.
func HandleCampaignDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("automated_campaigns", e.Request.PathValue("id"))
		if err != nil {
			return apis.NewNotFoundError("Campaign not found", err)
		}

		if err := app.Delete(record); err != nil {
			log.Printf("campaigns: failed to delete campaign %s: %v", record.Id, err)
			return apis.NewApiError(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
