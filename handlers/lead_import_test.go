package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"roofcrm/services"
	"roofcrm/testhelpers"
)

func newCSVUploadRequest(t *testing.T, target, csvData string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "leads.csv")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(csvData)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleLeadImportValidate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImportValidate(app)

	csvData := `Name,Email
Jane Smith,jane@example.com
,missing@example.com
`
	req := newCSVUploadRequest(t, "/api/leads/import", csvData)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var result services.ImportResult
	if err := jsonDecode(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ValidRows != 1 || result.ErrorRows != 1 {
		t.Errorf("got valid=%d errors=%d, want 1 and 1", result.ValidRows, result.ErrorRows)
	}

	// Validation must not write anything.
	leads, err := app.FindRecordsByFilter("leads", "1=1", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("failed to query leads: %v", err)
	}
	if len(leads) != 0 {
		t.Errorf("expected no leads after validate-only, got %d", len(leads))
	}
}

func TestHandleLeadImportCommit(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImportCommit(app)

	csvData := `Name,Email,Source
Jane Smith,jane@example.com,Website
Bob Jones,bob@example.com,Referral
,broken@example.com,
`
	req := newCSVUploadRequest(t, "/api/leads/import/commit", csvData)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var body struct {
		Created     int `json:"created"`
		SkippedRows int `json:"skipped_rows"`
	}
	if err := jsonDecode(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Created != 2 {
		t.Errorf("created = %d, want 2", body.Created)
	}
	if body.SkippedRows != 1 {
		t.Errorf("skipped_rows = %d, want 1", body.SkippedRows)
	}

	leads, err := app.FindRecordsByFilter("leads", "1=1", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("failed to query leads: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("expected 2 stored leads, got %d", len(leads))
	}
}

func TestHandleLeadImportValidate_MissingFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImportValidate(app)

	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	assertAPIError(t, handler(e), http.StatusBadRequest)
}
