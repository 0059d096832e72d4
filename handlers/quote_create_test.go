package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roofcrm/testhelpers"
)

func TestHandleQuoteCreate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	lead := testhelpers.CreateTestLead(t, app, "Manual Client", "manual@example.com")
	handler := HandleQuoteCreate(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes",
		`{"lead": "`+lead.Id+`", "title": "Gutter repair", "amount": 850}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	quote, err := app.FindFirstRecordByFilter("quotes", "lead = {:lead}",
		map[string]any{"lead": lead.Id})
	if err != nil {
		t.Fatalf("expected quote to be created: %v", err)
	}
	if quote.GetString("status") != "draft" {
		t.Errorf("status = %q, want default 'draft'", quote.GetString("status"))
	}
	if !strings.HasPrefix(quote.GetString("number"), "RC-Q-") {
		t.Errorf("number = %q, want an RC-Q- prefixed quote number", quote.GetString("number"))
	}
}

func TestHandleQuoteCreate_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCreate(app)

	tests := []struct {
		name string
		body string
	}{
		{"missing_title", `{"title": "", "amount": 100}`},
		{"negative_amount", `{"title": "Bad", "amount": -5}`},
		{"unknown_status", `{"title": "Bad", "amount": 100, "status": "pending"}`},
		{"missing_lead", `{"lead": "nope", "title": "Bad", "amount": 100}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(http.MethodPost, "/api/quotes", tt.body)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			assertAPIError(t, handler(e), http.StatusBadRequest)
		})
	}
}

func TestHandleQuoteStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	lead := testhelpers.CreateTestLead(t, app, "Status Client", "qstatus@example.com")
	quote := testhelpers.CreateTestQuote(t, app, lead.Id, "RC-Q-2025-001", 1000, "draft")
	handler := HandleQuoteStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes/"+quote.Id+"/status",
		`{"status": "sent"}`)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("quotes", quote.Id)
	if err != nil {
		t.Fatalf("failed to reload quote: %v", err)
	}
	if updated.GetString("status") != "sent" {
		t.Errorf("status = %q, want sent", updated.GetString("status"))
	}
}

func TestHandleQuoteStatus_RejectsPending(t *testing.T) {
	// "pending" is a job status, not a quote status; the dashboard card
	// that filters quotes on it depends on this staying invalid.
	app := testhelpers.NewTestApp(t)
	lead := testhelpers.CreateTestLead(t, app, "Status Client", "qstatus2@example.com")
	quote := testhelpers.CreateTestQuote(t, app, lead.Id, "RC-Q-2025-002", 1000, "draft")
	handler := HandleQuoteStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes/"+quote.Id+"/status",
		`{"status": "pending"}`)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	assertAPIError(t, handler(e), http.StatusBadRequest)
}
