// Package services provides the estimation and reporting computations
// behind the RoofCRM API: pricing, cost estimates, time-bucket
// aggregation, dashboard metrics and document exports.
package services

// PricingEntry is a single roofing material in the pricing catalog.
type PricingEntry struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	PricePerSqFt float64 `json:"price_per_sq_ft"`
}

// RoofingMaterials is the fixed pricing catalog, in display order.
// Extending this list is the intended customization point; prices are
// taken as-is without validation.
var RoofingMaterials = []PricingEntry{
	{Key: "asphalt-standard", Label: "Asphalt Shingles (Standard)", PricePerSqFt: 4.50},
	{Key: "asphalt-premium", Label: "Asphalt Shingles (Premium)", PricePerSqFt: 6.00},
	{Key: "metal", Label: "Metal Roof", PricePerSqFt: 10.00},
	{Key: "clay", Label: "Clay Tiles", PricePerSqFt: 12.50},
	{Key: "slate", Label: "Slate", PricePerSqFt: 15.00},
}

// MaterialByKey looks up a catalog entry by its key.
func MaterialByKey(key string) (PricingEntry, bool) {
	for _, m := range RoofingMaterials {
		if m.Key == key {
			return m, true
		}
	}
	return PricingEntry{}, false
}

// RoofTypeOptions returns the list of roof shape options offered on the
// quote form. Roof type does not affect pricing.
var RoofTypeOptions = []string{
	"gable",
	"hip",
	"flat",
	"mansard",
	"gambrel",
}

// LeadSourceOptions returns the list of lead source options.
var LeadSourceOptions = []string{
	"Website",
	"Referral",
	"Google Ads",
	"Facebook",
	"Instagram",
	"Other",
}

// Status values per collection. Lead statuses form a conceptual funnel
// (new → contacted → qualified → closed, or lost at any point) but the
// ordering is not enforced anywhere.
var (
	LeadStatuses  = []string{"new", "contacted", "qualified", "closed", "lost"}
	QuoteStatuses = []string{"draft", "sent", "accepted", "declined"}
	JobStatuses   = []string{"pending", "scheduled", "in-progress", "completed", "cancelled"}
	EventStatuses = []string{"scheduled", "in-progress", "completed", "cancelled"}
)

// ValidStatus reports whether value is one of the allowed statuses.
func ValidStatus(allowed []string, value string) bool {
	for _, s := range allowed {
		if s == value {
			return true
		}
	}
	return false
}
