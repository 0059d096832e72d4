// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestLead creates a lead record with the given name and email.
func CreateTestLead(t *testing.T, app *pocketbase.PocketBase, name, email string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("failed to find leads collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("email", email)
	record.Set("phone", "555-0100")
	record.Set("address", "123 Test Street")
	record.Set("status", "new")
	record.Set("source", "Website")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test lead: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record linked to a lead.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, leadID, number string, amount float64, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("lead", leadID)
	record.Set("number", number)
	record.Set("title", "Test quote "+number)
	record.Set("amount", amount)
	record.Set("status", status)
	record.Set("material", "metal")
	record.Set("roof_type", "Gable")
	record.Set("area_sq_ft", 200.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestCrew creates a crew record with the given name.
func CreateTestCrew(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("crews")
	if err != nil {
		t.Fatalf("failed to find crews collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("status", "available")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test crew: %v", err)
	}

	return record
}

// CreateTestCrewMember creates a member record linked to a crew.
func CreateTestCrewMember(t *testing.T, app *pocketbase.PocketBase, crewID, name, role string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("crew_members")
	if err != nil {
		t.Fatalf("failed to find crew_members collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("crew", crewID)
	record.Set("name", name)
	record.Set("role", role)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test crew member: %v", err)
	}

	return record
}

// CreateTestJob creates a job record with the given schedule and status.
func CreateTestJob(t *testing.T, app *pocketbase.PocketBase, title, scheduledDate, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		t.Fatalf("failed to find jobs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("client", "Test Client")
	record.Set("address", "123 Test Street")
	record.Set("scheduled_date", scheduledDate)
	record.Set("status", status)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test job: %v", err)
	}

	return record
}

// CreateTestEvent creates a schedule event record.
func CreateTestEvent(t *testing.T, app *pocketbase.PocketBase, title, startDate, endDate string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("schedule_events")
	if err != nil {
		t.Fatalf("failed to find schedule_events collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("start_date", startDate)
	record.Set("end_date", endDate)
	record.Set("status", "scheduled")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test event: %v", err)
	}

	return record
}

// CreateTestTemplate creates a response template record.
func CreateTestTemplate(t *testing.T, app *pocketbase.PocketBase, title, content, category string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("response_templates")
	if err != nil {
		t.Fatalf("failed to find response_templates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("content", content)
	record.Set("category", category)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test template: %v", err)
	}

	return record
}
