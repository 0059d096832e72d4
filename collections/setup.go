package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// Setup programmatically creates/ensures all CRM collections exist:
// leads, quotes, jobs, crews, crew_members, schedule_events,
// response_templates and automated_campaigns.
func Setup(app *pocketbase.PocketBase) {
	leads := ensureCollection(app, "leads", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.LeadStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "source"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		// Weak reference: deleting a lead keeps its quotes.
		c.Fields.Add(&core.RelationField{
			Name:         "lead",
			CollectionId: leads.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "number"})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.QuoteStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "material"})
		c.Fields.Add(&core.TextField{Name: "roof_type"})
		c.Fields.Add(&core.NumberField{Name: "area_sq_ft"})
		c.Fields.Add(&core.DateField{Name: "valid_until"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	crews := ensureCollection(app, "crews", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"available", "on-job", "off"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "specialties"})
		c.Fields.Add(&core.TextField{Name: "current_job"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	jobs := ensureCollection(app, "jobs", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "quote",
			CollectionId: quotes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "client", Required: true})
		c.Fields.Add(&core.TextField{Name: "address", Required: true})
		c.Fields.Add(&core.DateField{Name: "scheduled_date"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.JobStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "crew",
			CollectionId: crews.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "crew_members", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "crew",
			Required:      true,
			CollectionId:  crews.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "role"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "schedule_events", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "job",
			CollectionId: jobs.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "crew",
			CollectionId: crews.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.DateField{Name: "start_date", Required: true})
		c.Fields.Add(&core.DateField{Name: "end_date", Required: true})
		c.Fields.Add(&core.BoolField{Name: "all_day"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    services.EventStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "response_templates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "content", Required: true})
		c.Fields.Add(&core.TextField{Name: "category"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "automated_campaigns", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.TextField{Name: "trigger"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"active", "paused"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
