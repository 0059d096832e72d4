package services

// QuoteExportData holds everything the quote PDF needs, pre-fetched by
// the handler so the generator stays free of store access.
type QuoteExportData struct {
	Number      string
	Title       string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Address     string
	Material    string
	RoofType    string
	AreaSqFt    float64
	CreatedDate string
	ValidUntil  string
	Breakdown   Estimate
	Notes       string
}

// QuoteReportRow is one quote in the quotes report workbook.
type QuoteReportRow struct {
	Number string
	Client string
	Date   string
	Status string
	Amount float64
}

// QuotesReportData holds the rows and totals for the Excel export on the
// Reports page.
type QuotesReportData struct {
	GeneratedDate string
	Rows          []QuoteReportRow
	TotalAmount   float64
	AcceptedTotal float64
}
