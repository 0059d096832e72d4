package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"roofcrm/collections"
	"roofcrm/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and backfill quote numbers on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.MigrateQuoteNumbers(app); err != nil {
			log.Printf("Warning: quote number migration failed: %v", err)
		}
		return se.Next()
	})

	// Demo data is opt-in: `roofcrm seed` loads it into an empty store.
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load demo leads, quotes, crews, jobs and templates",
		Run: func(cmd *cobra.Command, args []string) {
			collections.Setup(app)
			if err := collections.Seed(app); err != nil {
				log.Fatalf("Seed failed: %v", err)
			}
		},
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Dashboard & reports ──────────────────────────────────
		se.Router.GET("/api/dashboard/summary", handlers.HandleDashboardSummary(app))
		se.Router.GET("/api/reports/performance", handlers.HandlePerformanceChart(app))
		se.Router.GET("/api/reports/revenue", handlers.HandleRevenueReport(app))
		se.Router.GET("/api/reports/weekly-jobs", handlers.HandleWeeklyJobs(app))
		se.Router.GET("/api/reports/lead-sources", handlers.HandleLeadSources(app))
		se.Router.GET("/api/reports/export/excel", handlers.HandleReportExportExcel(app))

		// ── Estimator & quote generation ─────────────────────────
		se.Router.GET("/api/pricing/materials", handlers.HandlePricingMaterials(app))
		se.Router.POST("/api/estimates/preview", handlers.HandleEstimatePreview(app))
		se.Router.POST("/api/quotes/generate", handlers.HandleQuoteGenerate(app))

		// ── Leads ────────────────────────────────────────────────
		se.Router.GET("/api/leads", handlers.HandleLeadList(app))
		se.Router.POST("/api/leads", handlers.HandleLeadCreate(app))
		se.Router.POST("/api/leads/import", handlers.HandleLeadImportValidate(app))
		se.Router.POST("/api/leads/import/commit", handlers.HandleLeadImportCommit(app))
		se.Router.GET("/api/leads/{id}", handlers.HandleLeadView(app))
		se.Router.PATCH("/api/leads/{id}", handlers.HandleLeadUpdate(app))
		se.Router.POST("/api/leads/{id}/status", handlers.HandleLeadStatus(app))
		se.Router.DELETE("/api/leads/{id}", handlers.HandleLeadDelete(app))

		// ── Quotes ───────────────────────────────────────────────
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/api/quotes", handlers.HandleQuoteCreate(app))
		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.PATCH("/api/quotes/{id}", handlers.HandleQuoteUpdate(app))
		se.Router.POST("/api/quotes/{id}/status", handlers.HandleQuoteStatus(app))
		se.Router.POST("/api/quotes/{id}/convert", handlers.HandleQuoteConvert(app))
		se.Router.GET("/api/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Jobs ─────────────────────────────────────────────────
		se.Router.GET("/api/jobs", handlers.HandleJobList(app))
		se.Router.POST("/api/jobs", handlers.HandleJobCreate(app))
		se.Router.GET("/api/jobs/{id}", handlers.HandleJobView(app))
		se.Router.PATCH("/api/jobs/{id}", handlers.HandleJobUpdate(app))
		se.Router.POST("/api/jobs/{id}/status", handlers.HandleJobStatus(app))
		se.Router.DELETE("/api/jobs/{id}", handlers.HandleJobDelete(app))

		// ── Schedule ─────────────────────────────────────────────
		se.Router.GET("/api/schedule/events", handlers.HandleScheduleList(app))
		se.Router.POST("/api/schedule/events", handlers.HandleScheduleCreate(app))
		se.Router.DELETE("/api/schedule/events/{id}", handlers.HandleScheduleDelete(app))

		// ── Crews ────────────────────────────────────────────────
		se.Router.GET("/api/crews", handlers.HandleCrewList(app))
		se.Router.GET("/api/crews/{id}", handlers.HandleCrewView(app))

		// ── Response templates ───────────────────────────────────
		se.Router.GET("/api/templates", handlers.HandleTemplateList(app))
		se.Router.POST("/api/templates", handlers.HandleTemplateCreate(app))
		se.Router.PATCH("/api/templates/{id}", handlers.HandleTemplateUpdate(app))
		se.Router.DELETE("/api/templates/{id}", handlers.HandleTemplateDelete(app))

		// ── Automated campaigns ──────────────────────────────────
		se.Router.GET("/api/campaigns", handlers.HandleCampaignList(app))
		se.Router.POST("/api/campaigns", handlers.HandleCampaignCreate(app))
		se.Router.PATCH("/api/campaigns/{id}", handlers.HandleCampaignUpdate(app))
		se.Router.POST("/api/campaigns/{id}/status", handlers.HandleCampaignStatus(app))
		se.Router.DELETE("/api/campaigns/{id}", handlers.HandleCampaignDelete(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
