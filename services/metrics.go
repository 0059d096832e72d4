package services

import "time"

// LeadStat, QuoteStat and JobStat carry the handful of fields the
// dashboard and report aggregations read from their source records. A
// zero time means the record had no usable date.
type LeadStat struct {
	Created time.Time
	Source  string
}

type QuoteStat struct {
	Amount  float64
	Status  string
	Created time.Time
}

type JobStat struct {
	Scheduled time.Time
	Status    string
}

// DashboardSummary backs the four stat cards on the dashboard.
type DashboardSummary struct {
	NewLeadsLast7Days       int     `json:"new_leads_last_7_days"`
	PendingQuotesCount      int     `json:"pending_quotes_count"`
	MonthToDateRevenue      float64 `json:"month_to_date_revenue"`
	ScheduledJobsNext14Days int     `json:"scheduled_jobs_next_14_days"`
}

// The "Pending Quotes" card has always filtered on this status even
// though quotes are stored as draft/sent/accepted/declined, so the count
// is permanently zero.
// TODO: confirm with ops whether the card should count draft+sent quotes,
// then change this in one place.
const pendingQuoteStatus = "pending"

// ComputeDashboardSummary reduces the three collections into the stat
// card values. now is passed in explicitly so the time windows are
// reproducible; callers must supply fully fetched collections (the
// readiness gate lives at the API layer).
func ComputeDashboardSummary(leads []LeadStat, quotes []QuoteStat, jobs []JobStat, now time.Time) DashboardSummary {
	var summary DashboardSummary

	weekAgo := now.AddDate(0, 0, -7)
	for _, l := range leads {
		if !l.Created.IsZero() && !l.Created.Before(weekAgo) {
			summary.NewLeadsLast7Days++
		}
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, q := range quotes {
		if q.Status == pendingQuoteStatus {
			summary.PendingQuotesCount++
		}
		if q.Status == "accepted" && !q.Created.IsZero() && !q.Created.Before(firstOfMonth) {
			summary.MonthToDateRevenue += q.Amount
		}
	}

	// Inclusive on both ends: a job exactly 14 days out still counts.
	horizon := now.AddDate(0, 0, 14)
	for _, j := range jobs {
		if j.Scheduled.IsZero() {
			continue
		}
		if !j.Scheduled.Before(now) && !j.Scheduled.After(horizon) {
			summary.ScheduledJobsNext14Days++
		}
	}

	return summary
}

// AcceptedRevenue converts quotes into dated amounts for revenue
// bucketing, keeping only accepted quotes.
func AcceptedRevenue(quotes []QuoteStat) []DatedAmount {
	var entries []DatedAmount
	for _, q := range quotes {
		if q.Status != "accepted" {
			continue
		}
		entries = append(entries, DatedAmount{Date: q.Created, Amount: q.Amount})
	}
	return entries
}

// CountBySource groups leads by their source for the lead-sources report.
// Known sources are emitted first in catalog order so the chart legend is
// stable; anything unrecognized (including blank) is folded into "Other".
func CountBySource(leads []LeadStat) []Bucket {
	buckets := emptyBuckets(LeadSourceOptions)
	index := make(map[string]int, len(LeadSourceOptions))
	for i, s := range LeadSourceOptions {
		index[s] = i
	}
	other := index["Other"]
	for _, l := range leads {
		if i, ok := index[l.Source]; ok {
			buckets[i].Count++
		} else {
			buckets[other].Count++
		}
	}
	return buckets
}
