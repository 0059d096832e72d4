package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"roofcrm/testhelpers"
)

func createTestCampaign(t *testing.T, app core.App, name, status string) *core.Record {
	t.Helper()
	col, err := app.FindCollectionByNameOrId("automated_campaigns")
	if err != nil {
		t.Fatalf("failed to find automated_campaigns collection: %v", err)
	}
	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("trigger", "lead.created")
	record.Set("status", status)
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save campaign: %v", err)
	}
	return record
}

func TestHandleCampaignCreate_DefaultsToPaused(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCampaignCreate(app)

	req := newJSONRequest(http.MethodPost, "/api/campaigns",
		`{"name": "New lead welcome", "trigger": "lead.created"}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var created map[string]any
	if err := jsonDecode(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created["status"] != "paused" {
		t.Errorf("status = %v, want paused", created["status"])
	}
}

func TestHandleCampaignCreate_RejectsInvalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCampaignCreate(app)

	tests := []struct {
		name string
		body string
	}{
		{"missing_name", `{"trigger": "lead.created"}`},
		{"unknown_status", `{"name": "Bad", "status": "archived"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(http.MethodPost, "/api/campaigns", tt.body)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			assertAPIError(t, handler(e), http.StatusBadRequest)
		})
	}
}

func TestHandleCampaignUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	campaign := createTestCampaign(t, app, "Old name", "paused")
	handler := HandleCampaignUpdate(app)

	req := newJSONRequest(http.MethodPatch, "/api/campaigns/"+campaign.Id,
		`{"name": "Stale quote nudge", "trigger": "quote.sent+7d"}`)
	req.SetPathValue("id", campaign.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("automated_campaigns", campaign.Id)
	if err != nil {
		t.Fatalf("failed to reload campaign: %v", err)
	}
	if updated.GetString("name") != "Stale quote nudge" {
		t.Errorf("name = %q, want Stale quote nudge", updated.GetString("name"))
	}
	// Status was omitted from the body, so the stored value stays.
	if updated.GetString("status") != "paused" {
		t.Errorf("status = %q, want paused", updated.GetString("status"))
	}
}

func TestHandleCampaignStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	campaign := createTestCampaign(t, app, "New lead welcome", "paused")
	handler := HandleCampaignStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/campaigns/"+campaign.Id+"/status",
		`{"status": "active"}`)
	req.SetPathValue("id", campaign.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("automated_campaigns", campaign.Id)
	if err != nil {
		t.Fatalf("failed to reload campaign: %v", err)
	}
	if updated.GetString("status") != "active" {
		t.Errorf("status = %q, want active", updated.GetString("status"))
	}
}

func TestHandleCampaignStatus_RejectsUnknown(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	campaign := createTestCampaign(t, app, "New lead welcome", "paused")
	handler := HandleCampaignStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/campaigns/"+campaign.Id+"/status",
		`{"status": "archived"}`)
	req.SetPathValue("id", campaign.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	assertAPIError(t, handler(e), http.StatusBadRequest)
}

func TestHandleCampaignDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	campaign := createTestCampaign(t, app, "Doomed", "paused")
	handler := HandleCampaignDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/campaigns/"+campaign.Id, nil)
	req.SetPathValue("id", campaign.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if _, err := app.FindRecordById("automated_campaigns", campaign.Id); err == nil {
		t.Error("expected campaign to be deleted")
	}
}
