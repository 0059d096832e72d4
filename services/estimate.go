package services

import "github.com/spf13/cast"

// Labor is estimated per square foot of roof area; additional costs
// (disposal, permits, contingency) are a flat percentage on top of
// materials and labor.
const (
	LaborRatePerSqFt   = 3.5
	AdditionalCostRate = 0.10
)

// Estimate is the cost breakdown for a roofing quote. Amounts carry full
// float64 precision; rounding to two decimals happens only at display or
// export time.
type Estimate struct {
	MaterialCost    float64 `json:"material_cost"`
	LaborCost       float64 `json:"labor_cost"`
	AdditionalCosts float64 `json:"additional_costs"`
	Total           float64 `json:"total"`
}

// CalcEstimate computes the cost breakdown for the given unit price and
// roof area in square feet.
func CalcEstimate(pricePerSqFt, area float64) Estimate {
	materialCost := pricePerSqFt * area
	laborCost := area * LaborRatePerSqFt
	additionalCosts := (materialCost + laborCost) * AdditionalCostRate
	return Estimate{
		MaterialCost:    materialCost,
		LaborCost:       laborCost,
		AdditionalCosts: additionalCosts,
		Total:           materialCost + laborCost + additionalCosts,
	}
}

// ParseArea leniently parses the free-text roof area field. Empty or
// non-numeric input reports ok=false instead of an error; the form is
// routinely half-filled.
func ParseArea(areaText string) (float64, bool) {
	area, err := cast.ToFloat64E(areaText)
	if err != nil {
		return 0, false
	}
	return area, true
}

// EstimateFromInput computes an estimate from raw quote-form input. The
// form may be partially filled at any point, so bad input never errors:
// an unknown material key or a non-numeric area yields the zero Estimate
// with ok=false. A zero Estimate with ok=true is a genuine zero-cost
// estimate (area 0), which callers may treat differently.
func EstimateFromInput(materialKey, areaText string) (Estimate, bool) {
	material, found := MaterialByKey(materialKey)
	if !found {
		return Estimate{}, false
	}

	area, ok := ParseArea(areaText)
	if !ok {
		return Estimate{}, false
	}

	return CalcEstimate(material.PricePerSqFt, area), true
}
