package services

import "time"

// Bucket is one fixed time-interval slot in an aggregation. Count is used
// for lead/job series, Total for summed quote amounts; both are always
// populated so callers pick whichever they need.
type Bucket struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// DatedAmount pairs a record date with a currency amount for sum-style
// bucketing.
type DatedAmount struct {
	Date   time.Time
	Amount float64
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var quarterLabels = []string{"Q1", "Q2", "Q3", "Q4"}

// Monday-first; Sunday is rotated to the last slot so work weeks read
// naturally on the charts.
var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func emptyBuckets(labels []string) []Bucket {
	buckets := make([]Bucket, len(labels))
	for i, label := range labels {
		buckets[i] = Bucket{Label: label}
	}
	return buckets
}

// CountByMonth counts dates per calendar month. It always returns exactly
// 12 buckets in Jan..Dec order, all zero for empty input. Zero dates
// (records without a usable date) are skipped rather than failing the
// aggregation.
func CountByMonth(dates []time.Time) []Bucket {
	buckets := emptyBuckets(monthLabels)
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		buckets[int(d.Month())-1].Count++
	}
	return buckets
}

// SumByMonth accumulates amounts per calendar month, returning 12 buckets
// in Jan..Dec order. Entries with a zero date are skipped.
func SumByMonth(entries []DatedAmount) []Bucket {
	buckets := emptyBuckets(monthLabels)
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		i := int(e.Date.Month()) - 1
		buckets[i].Count++
		buckets[i].Total += e.Amount
	}
	return buckets
}

// QuarterTotals folds 12 monthly buckets into 4 quarterly ones (Q1..Q4),
// summing both counts and totals. Inputs shorter than 12 buckets only
// fill the quarters they cover.
func QuarterTotals(monthly []Bucket) []Bucket {
	buckets := emptyBuckets(quarterLabels)
	for i, m := range monthly {
		if i >= 12 {
			break
		}
		q := i / 3
		buckets[q].Count += m.Count
		buckets[q].Total += m.Total
	}
	return buckets
}

// CountByWeekday counts dates per day of week, Monday first and Sunday
// last. Always returns exactly 7 buckets; zero dates are skipped.
func CountByWeekday(dates []time.Time) []Bucket {
	buckets := emptyBuckets(weekdayLabels)
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		// time.Weekday numbers Sunday as 0; rotate it to position 6.
		i := (int(d.Weekday()) + 6) % 7
		buckets[i].Count++
	}
	return buckets
}
