package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// HandleDashboardSummary computes the four dashboard stat cards. All
// three source collections must load before anything is computed; a
// failed read short-circuits into a 503 so the frontend keeps showing
// its loading state instead of zeros that look like real data.
func HandleDashboardSummary(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leads, err := fetchAll(app, "leads")
		if err != nil {
			log.Printf("dashboard: could not query leads: %v", err)
			return dataUnavailable(err)
		}
		quotes, err := fetchAll(app, "quotes")
		if err != nil {
			log.Printf("dashboard: could not query quotes: %v", err)
			return dataUnavailable(err)
		}
		jobs, err := fetchAll(app, "jobs")
		if err != nil {
			log.Printf("dashboard: could not query jobs: %v", err)
			return dataUnavailable(err)
		}

		summary := services.ComputeDashboardSummary(
			leadStats(leads),
			quoteStats(quotes),
			jobStats(jobs),
			time.Now().UTC(),
		)

		return e.JSON(http.StatusOK, summary)
	}
}
