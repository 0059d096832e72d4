// Package handlers implements the JSON API consumed by the RoofCRM
// frontend. Every handler is a closure over the PocketBase app,
// registered on the router in main.
package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/services"
)

// leadStats maps lead records to the view the aggregations consume.
func leadStats(records []*core.Record) []services.LeadStat {
	stats := make([]services.LeadStat, 0, len(records))
	for _, rec := range records {
		stats = append(stats, services.LeadStat{
			Created: rec.GetDateTime("created").Time(),
			Source:  rec.GetString("source"),
		})
	}
	return stats
}

func quoteStats(records []*core.Record) []services.QuoteStat {
	stats := make([]services.QuoteStat, 0, len(records))
	for _, rec := range records {
		stats = append(stats, services.QuoteStat{
			Amount:  rec.GetFloat("amount"),
			Status:  rec.GetString("status"),
			Created: rec.GetDateTime("created").Time(),
		})
	}
	return stats
}

func jobStats(records []*core.Record) []services.JobStat {
	stats := make([]services.JobStat, 0, len(records))
	for _, rec := range records {
		stats = append(stats, services.JobStat{
			Scheduled: rec.GetDateTime("scheduled_date").Time(),
			Status:    rec.GetString("status"),
		})
	}
	return stats
}

// fetchAll loads every record of a collection, unsorted.
func fetchAll(app *pocketbase.PocketBase, collection string) ([]*core.Record, error) {
	return app.FindRecordsByFilter(collection, "1=1", "", 0, 0, nil)
}

// dataUnavailable is the readiness-gate error: aggregate endpoints must
// not compute over partially fetched collections, so any failed read
// turns into a 503 and the computation is skipped entirely.
func dataUnavailable(err error) error {
	return apis.NewApiError(503, "Data unavailable. Please try again.", err)
}
