package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"roofcrm/services"
)

// PerformancePoint is one bar group on the performance overview chart.
type PerformancePoint struct {
	Name   string `json:"name"`
	Leads  int    `json:"leads"`
	Quotes int    `json:"quotes"`
	Jobs   int    `json:"jobs"`
}

// HandlePerformanceChart returns lead/quote/job counts bucketed by month
// (default) or by quarter (?range=quarterly). Buckets are emitted in
// calendar order so the chart axis stays stable.
func HandlePerformanceChart(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leads, err := fetchAll(app, "leads")
		if err != nil {
			log.Printf("reports: could not query leads: %v", err)
			return dataUnavailable(err)
		}
		quotes, err := fetchAll(app, "quotes")
		if err != nil {
			log.Printf("reports: could not query quotes: %v", err)
			return dataUnavailable(err)
		}
		jobs, err := fetchAll(app, "jobs")
		if err != nil {
			log.Printf("reports: could not query jobs: %v", err)
			return dataUnavailable(err)
		}

		leadBuckets := services.CountByMonth(createdDates(leads))
		quoteBuckets := services.CountByMonth(createdDates(quotes))
		jobBuckets := services.CountByMonth(createdDates(jobs))

		if e.Request.URL.Query().Get("range") == "quarterly" {
			leadBuckets = services.QuarterTotals(leadBuckets)
			quoteBuckets = services.QuarterTotals(quoteBuckets)
			jobBuckets = services.QuarterTotals(jobBuckets)
		}

		points := make([]PerformancePoint, len(leadBuckets))
		for i := range leadBuckets {
			points[i] = PerformancePoint{
				Name:   leadBuckets[i].Label,
				Leads:  leadBuckets[i].Count,
				Quotes: quoteBuckets[i].Count,
				Jobs:   jobBuckets[i].Count,
			}
		}

		return e.JSON(http.StatusOK, points)
	}
}

// RevenuePoint is one month on the revenue report.
type RevenuePoint struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// HandleRevenueReport sums accepted-quote amounts per calendar month of
// a reference year (?year=, default current). Always emits 12 points.
func HandleRevenueReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes, err := fetchAll(app, "quotes")
		if err != nil {
			log.Printf("reports: could not query quotes: %v", err)
			return dataUnavailable(err)
		}

		year := time.Now().UTC().Year()
		if y := e.Request.URL.Query().Get("year"); y != "" {
			year = cast.ToInt(y)
		}

		entries := services.AcceptedRevenue(quoteStats(quotes))
		inYear := entries[:0]
		for _, entry := range entries {
			if entry.Date.Year() == year {
				inYear = append(inYear, entry)
			}
		}

		points := make([]RevenuePoint, 0, 12)
		for _, b := range services.SumByMonth(inYear) {
			points = append(points, RevenuePoint{Name: b.Label, Revenue: b.Total})
		}

		return e.JSON(http.StatusOK, points)
	}
}

// WeeklyJobsPoint is one weekday on the scheduled-vs-completed chart.
type WeeklyJobsPoint struct {
	Day       string `json:"day"`
	Scheduled int    `json:"scheduled"`
	Completed int    `json:"completed"`
}

// HandleWeeklyJobs buckets jobs by day of week, Monday first. The
// scheduled series counts every job that has a date, whatever its
// status, so completed jobs appear in both series; the chart has always
// read this way and downstream users compare the two bars directly.
func HandleWeeklyJobs(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobs, err := fetchAll(app, "jobs")
		if err != nil {
			log.Printf("reports: could not query jobs: %v", err)
			return dataUnavailable(err)
		}

		var scheduledDates, completedDates []time.Time
		for _, rec := range jobs {
			d := rec.GetDateTime("scheduled_date").Time()
			scheduledDates = append(scheduledDates, d)
			if rec.GetString("status") == "completed" {
				completedDates = append(completedDates, d)
			}
		}

		scheduled := services.CountByWeekday(scheduledDates)
		completed := services.CountByWeekday(completedDates)

		points := make([]WeeklyJobsPoint, len(scheduled))
		for i := range scheduled {
			points[i] = WeeklyJobsPoint{
				Day:       scheduled[i].Label,
				Scheduled: scheduled[i].Count,
				Completed: completed[i].Count,
			}
		}

		return e.JSON(http.StatusOK, points)
	}
}

// HandleLeadSources counts leads per source for the lead-sources pie.
func HandleLeadSources(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leads, err := fetchAll(app, "leads")
		if err != nil {
			log.Printf("reports: could not query leads: %v", err)
			return dataUnavailable(err)
		}

		return e.JSON(http.StatusOK, services.CountBySource(leadStats(leads)))
	}
}

// HandleReportExportExcel downloads the quotes report workbook.
func HandleReportExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes, err := app.FindRecordsByFilter("quotes", "1=1", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("report_export: could not query quotes: %v", err)
			return dataUnavailable(err)
		}

		now := time.Now().UTC()
		data := services.QuotesReportData{
			GeneratedDate: now.Format("2006-01-02"),
		}
		for _, rec := range quotes {
			amount := rec.GetFloat("amount")
			client := ""
			if leadID := rec.GetString("lead"); leadID != "" {
				if lead, err := app.FindRecordById("leads", leadID); err == nil {
					client = lead.GetString("name")
				}
			}
			data.Rows = append(data.Rows, services.QuoteReportRow{
				Number: rec.GetString("number"),
				Client: client,
				Date:   rec.GetDateTime("created").Time().Format("2006-01-02"),
				Status: rec.GetString("status"),
				Amount: amount,
			})
			data.TotalAmount += amount
			if rec.GetString("status") == "accepted" {
				data.AcceptedTotal += amount
			}
		}

		xlsxBytes, err := services.GenerateQuotesExcel(data)
		if err != nil {
			log.Printf("report_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quotes_Report_%s.xlsx", now.Format("2006-01-02"))
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

func createdDates(records []*core.Record) []time.Time {
	dates := make([]time.Time, 0, len(records))
	for _, rec := range records {
		dates = append(dates, rec.GetDateTime("created").Time())
	}
	return dates
}
