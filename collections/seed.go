package collections

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type leadDef struct {
	name    string
	email   string
	phone   string
	address string
	status  string
	source  string
	notes   string
}

type quoteDef struct {
	leadEmail string
	title     string
	material  string
	roofType  string
	areaSqFt  float64
	status    string
	notes     string
}

type crewDef struct {
	name        string
	status      string
	specialties []string
	members     []memberDef
}

type memberDef struct {
	name  string
	role  string
	phone string
}

type jobDef struct {
	title       string
	client      string
	address     string
	daysFromNow int
	hasDate     bool
	status      string
	crewName    string
	eventDays   int // event length in days, 0 for no schedule event
	eventStatus string
}

type templateDef struct {
	title    string
	content  string
	category string
}

type campaignDef struct {
	name        string
	description string
	trigger     string
	status      string
}

// ── Demo data ────────────────────────────────────────────────────────────

var demoLeads = []leadDef{
	{"John Smith", "john.smith@example.com", "(555) 123-4567", "123 Main St, Anytown, USA", "new", "Website",
		"Interested in a full roof replacement. Currently has asphalt shingles that are about 20 years old."},
	{"Sarah Johnson", "sarah.j@example.com", "(555) 234-5678", "456 Oak Ave, Somewhere, USA", "contacted", "Referral",
		"Referred by Michael Brown. Needs roof repair due to recent storm damage."},
	{"Michael Brown", "mbrown@example.com", "(555) 345-6789", "789 Pine Rd, Nowhere, USA", "qualified", "Google Ads",
		"Previous customer, now interested in gutter replacement."},
	{"Emma Davis", "emma.d@example.com", "(555) 456-7890", "321 Elm St, Elsewhere, USA", "new", "Facebook", ""},
	{"David Wilson", "dwilson@example.com", "(555) 567-8901", "654 Maple Dr, Anywhere, USA", "contacted", "Instagram", ""},
	{"Jennifer Garcia", "jgarcia@example.com", "(555) 678-9012", "987 Cedar Ln, Everywhere, USA", "qualified", "Website", ""},
}

var demoQuotes = []quoteDef{
	{"john.smith@example.com", "Full roof replacement", "asphalt-premium", "gable", 2090, "draft", ""},
	{"sarah.j@example.com", "Storm damage repair", "asphalt-standard", "hip", 1450, "sent", "Insurance claim pending."},
	{"mbrown@example.com", "Metal roof installation", "metal", "gable", 1180, "accepted", ""},
	{"jgarcia@example.com", "Clay tile re-roof", "clay", "flat", 560, "draft", ""},
}

var demoCrews = []crewDef{
	{"Alpha Crew", "on-job", []string{"Shingle", "Metal"}, []memberDef{
		{"Carlos Mendez", "Foreman", "(555) 111-2233"},
		{"Jake Thompson", "Installer", "(555) 222-3344"},
		{"Luis Ortega", "Installer", "(555) 333-4455"},
	}},
	{"Bravo Crew", "available", []string{"Tile", "Slate"}, []memberDef{
		{"Mike O'Brien", "Foreman", "(555) 444-5566"},
		{"Sam Carter", "Installer", "(555) 555-6677"},
	}},
	{"Charlie Crew", "off", []string{"Gutters", "Repairs"}, []memberDef{
		{"Tony Russo", "Foreman", "(555) 666-7788"},
	}},
}

var demoJobs = []jobDef{
	{"Metal roof installation", "Michael Brown", "789 Pine Rd, Nowhere, USA", 3, true, "scheduled", "Alpha Crew", 2, "scheduled"},
	{"Gutter replacement", "Emma Davis", "321 Elm St, Elsewhere, USA", 10, true, "scheduled", "Bravo Crew", 1, "scheduled"},
	{"Roof inspection", "David Wilson", "654 Maple Dr, Anywhere, USA", -4, true, "completed", "Charlie Crew", 1, "completed"},
	{"Shingle repair", "Sarah Johnson", "456 Oak Ave, Somewhere, USA", 0, false, "pending", "", 0, ""},
}

var demoTemplates = []templateDef{
	{"Initial inquiry response", "Hi {name}, thanks for reaching out about your roofing project. We'd love to schedule a free inspection. What times work for you this week?", "Leads"},
	{"Quote follow-up", "Hi {name}, just checking in on the quote we sent over on {date}. Happy to walk through the numbers or adjust the scope if needed.", "Quotes"},
	{"Job scheduled confirmation", "Hi {name}, your roofing work is confirmed for {date}. The crew will arrive between 7 and 8 AM. Please keep driveway access clear.", "Jobs"},
	{"Post-job thank you", "Hi {name}, thanks for choosing us for your roofing project! If you're happy with the work, we'd really appreciate a review.", "Jobs"},
}

var demoCampaigns = []campaignDef{
	{"New lead welcome", "Sends the initial inquiry response one hour after a lead comes in.", "lead.created", "active"},
	{"Stale quote nudge", "Follows up on quotes still in sent status after 7 days.", "quote.sent+7d", "paused"},
}

// Seed inserts demo data on first run. It is idempotent: if any leads
// already exist, the entire seed is skipped.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter("leads", "1=1", "", 1, 0, nil)
	if err == nil && len(existing) > 0 {
		log.Println("Seed: leads already exist, skipping.")
		return nil
	}

	now := time.Now().UTC()

	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		return fmt.Errorf("leads collection: %w", err)
	}

	leadsByEmail := make(map[string]*core.Record, len(demoLeads))
	for _, def := range demoLeads {
		record := core.NewRecord(leadsCol)
		record.Set("name", def.name)
		record.Set("email", def.email)
		record.Set("phone", def.phone)
		record.Set("address", def.address)
		record.Set("status", def.status)
		record.Set("source", def.source)
		record.Set("notes", def.notes)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed lead %q: %w", def.name, err)
		}
		leadsByEmail[def.email] = record
	}

	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("quotes collection: %w", err)
	}

	for _, def := range demoQuotes {
		material, ok := services.MaterialByKey(def.material)
		if !ok {
			return fmt.Errorf("seed quote %q: unknown material %q", def.title, def.material)
		}
		estimate := services.CalcEstimate(material.PricePerSqFt, def.areaSqFt)

		record := core.NewRecord(quotesCol)
		if lead, ok := leadsByEmail[def.leadEmail]; ok {
			record.Set("lead", lead.Id)
		}
		record.Set("number", services.GenerateQuoteNumber(app, now))
		record.Set("title", def.title)
		record.Set("amount", estimate.Total)
		record.Set("status", def.status)
		record.Set("material", def.material)
		record.Set("roof_type", def.roofType)
		record.Set("area_sq_ft", def.areaSqFt)
		record.Set("valid_until", now.AddDate(0, 1, 0).Format("2006-01-02"))
		record.Set("notes", def.notes)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed quote %q: %w", def.title, err)
		}
	}

	crewsCol, err := app.FindCollectionByNameOrId("crews")
	if err != nil {
		return fmt.Errorf("crews collection: %w", err)
	}
	membersCol, err := app.FindCollectionByNameOrId("crew_members")
	if err != nil {
		return fmt.Errorf("crew_members collection: %w", err)
	}

	crewsByName := make(map[string]*core.Record, len(demoCrews))
	for _, def := range demoCrews {
		record := core.NewRecord(crewsCol)
		record.Set("name", def.name)
		record.Set("status", def.status)
		record.Set("specialties", def.specialties)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed crew %q: %w", def.name, err)
		}
		crewsByName[def.name] = record

		for _, m := range def.members {
			member := core.NewRecord(membersCol)
			member.Set("crew", record.Id)
			member.Set("name", m.name)
			member.Set("role", m.role)
			member.Set("phone", m.phone)
			if err := app.Save(member); err != nil {
				return fmt.Errorf("seed crew member %q: %w", m.name, err)
			}
		}
	}

	jobsCol, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		return fmt.Errorf("jobs collection: %w", err)
	}
	eventsCol, err := app.FindCollectionByNameOrId("schedule_events")
	if err != nil {
		return fmt.Errorf("schedule_events collection: %w", err)
	}

	for _, def := range demoJobs {
		record := core.NewRecord(jobsCol)
		record.Set("title", def.title)
		record.Set("client", def.client)
		record.Set("address", def.address)
		record.Set("status", def.status)
		var start time.Time
		if def.hasDate {
			start = now.AddDate(0, 0, def.daysFromNow)
			record.Set("scheduled_date", start.Format("2006-01-02"))
		}
		if crew, ok := crewsByName[def.crewName]; ok {
			record.Set("crew", crew.Id)
		}
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed job %q: %w", def.title, err)
		}

		if def.eventDays > 0 && def.hasDate {
			event := core.NewRecord(eventsCol)
			event.Set("job", record.Id)
			if crew, ok := crewsByName[def.crewName]; ok {
				event.Set("crew", crew.Id)
			}
			event.Set("title", def.title)
			event.Set("start_date", start.Format("2006-01-02"))
			event.Set("end_date", start.AddDate(0, 0, def.eventDays-1).Format("2006-01-02"))
			event.Set("all_day", true)
			event.Set("status", def.eventStatus)
			if err := app.Save(event); err != nil {
				return fmt.Errorf("seed event for job %q: %w", def.title, err)
			}
		}
	}

	templatesCol, err := app.FindCollectionByNameOrId("response_templates")
	if err != nil {
		return fmt.Errorf("response_templates collection: %w", err)
	}
	for _, def := range demoTemplates {
		record := core.NewRecord(templatesCol)
		record.Set("title", def.title)
		record.Set("content", def.content)
		record.Set("category", def.category)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed template %q: %w", def.title, err)
		}
	}

	campaignsCol, err := app.FindCollectionByNameOrId("automated_campaigns")
	if err != nil {
		return fmt.Errorf("automated_campaigns collection: %w", err)
	}
	for _, def := range demoCampaigns {
		record := core.NewRecord(campaignsCol)
		record.Set("name", def.name)
		record.Set("description", def.description)
		record.Set("trigger", def.trigger)
		record.Set("status", def.status)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed campaign %q: %w", def.name, err)
		}
	}

	log.Printf("Seed: created %d leads, %d quotes, %d crews, %d jobs, %d templates, %d campaigns.\n",
		len(demoLeads), len(demoQuotes), len(demoCrews), len(demoJobs), len(demoTemplates), len(demoCampaigns))
	return nil
}
