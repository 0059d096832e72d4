package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roofcrm/services"
	"roofcrm/testhelpers"
)

func TestHandleDashboardSummary_EmptyStore(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleDashboardSummary(app)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var summary services.DashboardSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if summary != (services.DashboardSummary{}) {
		t.Errorf("expected all-zero summary for empty store, got %+v", summary)
	}
}

func TestHandleDashboardSummary_CountsRecentRecords(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Fresh records: created timestamps fall inside the 7-day window and
	// the current month.
	lead := testhelpers.CreateTestLead(t, app, "Recent Lead", "recent@example.com")
	testhelpers.CreateTestQuote(t, app, lead.Id, "RC-Q-2025-001", 2970, "accepted")
	testhelpers.CreateTestQuote(t, app, lead.Id, "RC-Q-2025-002", 500, "draft")

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02 15:04:05.000Z")
	testhelpers.CreateTestJob(t, app, "Roof replacement", tomorrow, "scheduled")

	handler := HandleDashboardSummary(app)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var summary services.DashboardSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if summary.NewLeadsLast7Days != 1 {
		t.Errorf("NewLeadsLast7Days = %d, want 1", summary.NewLeadsLast7Days)
	}
	if summary.MonthToDateRevenue != 2970 {
		t.Errorf("MonthToDateRevenue = %v, want 2970 (accepted quote only)", summary.MonthToDateRevenue)
	}
	if summary.ScheduledJobsNext14Days != 1 {
		t.Errorf("ScheduledJobsNext14Days = %d, want 1", summary.ScheduledJobsNext14Days)
	}
	// Stored statuses never include "pending", so the card stays zero.
	if summary.PendingQuotesCount != 0 {
		t.Errorf("PendingQuotesCount = %d, want 0", summary.PendingQuotesCount)
	}
}
