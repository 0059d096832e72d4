package collections_test

import (
	"testing"

	"roofcrm/collections"
	"roofcrm/testhelpers"
)

func TestSetup_CreatesAllCollections(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	names := []string{
		"leads",
		"quotes",
		"crews",
		"jobs",
		"crew_members",
		"schedule_events",
		"response_templates",
		"automated_campaigns",
	}
	for _, name := range names {
		if _, err := app.FindCollectionByNameOrId(name); err != nil {
			t.Errorf("expected collection %q to exist: %v", name, err)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// NewTestApp already ran Setup once; a second run must not fail or
	// duplicate anything.
	collections.Setup(app)

	leads, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("leads collection missing after second Setup: %v", err)
	}
	if leads.Fields.GetByName("name") == nil {
		t.Error("leads collection lost its name field")
	}
}

func TestSetup_QuoteStatusValues(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	lead := testhelpers.CreateTestLead(t, app, "Field Check", "fields@example.com")
	quote := testhelpers.CreateTestQuote(t, app, lead.Id, "RC-Q-2025-001", 100, "draft")

	// "pending" is not in the quotes status enum and must not save.
	quote.Set("status", "pending")
	if err := app.Save(quote); err == nil {
		t.Error("expected saving a quote with status 'pending' to fail validation")
	}
}
