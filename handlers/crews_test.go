package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roofcrm/testhelpers"
)

func TestHandleCrewList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCrew(t, app, "Bravo Crew")
	testhelpers.CreateTestCrew(t, app, "Alpha Crew")

	handler := HandleCrewList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/crews", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var crews []map[string]any
	if err := jsonDecode(rec.Body.Bytes(), &crews); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(crews) != 2 {
		t.Fatalf("got %d crews, want 2", len(crews))
	}
	// Sorted by name.
	if crews[0]["name"] != "Alpha Crew" {
		t.Errorf("first crew = %v, want Alpha Crew", crews[0]["name"])
	}
}

func TestHandleCrewView_WithMembers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	crew := testhelpers.CreateTestCrew(t, app, "Alpha Crew")
	testhelpers.CreateTestCrewMember(t, app, crew.Id, "Mike Torres", "Foreman")
	testhelpers.CreateTestCrewMember(t, app, crew.Id, "Dan Reyes", "Roofer")

	other := testhelpers.CreateTestCrew(t, app, "Bravo Crew")
	testhelpers.CreateTestCrewMember(t, app, other.Id, "Sam Lee", "Roofer")

	handler := HandleCrewView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/crews/"+crew.Id, nil)
	req.SetPathValue("id", crew.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var body struct {
		Crew    map[string]any   `json:"crew"`
		Members []map[string]any `json:"members"`
	}
	if err := jsonDecode(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Crew["name"] != "Alpha Crew" {
		t.Errorf("crew name = %v, want Alpha Crew", body.Crew["name"])
	}
	if len(body.Members) != 2 {
		t.Errorf("got %d members, want 2 (other crew's member excluded)", len(body.Members))
	}
}

func TestHandleCrewView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCrewView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/crews/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	assertAPIError(t, handler(e), http.StatusNotFound)
}
