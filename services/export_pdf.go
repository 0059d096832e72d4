package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders a printable quote document using maroto/v2 and
// returns the raw PDF bytes.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addClientSection(m, data)
	addProjectSection(m, data)
	addBreakdownTable(m, data.Breakdown)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title row plus quote number and date.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Roofing Quote", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grayText := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	grayTextRight := grayText
	grayTextRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote #: %s", data.Number), grayText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), grayTextRight),
			),
		),
	)

	if data.ValidUntil != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Valid until: %s", data.ValidUntil), grayTextRight),
				),
			),
		)
	}

	// Spacer
	m.AddRows(row.New(4))
}

// addClientSection adds the client contact block.
func addClientSection(m core.Maroto, data QuoteExportData) {
	label := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	value := props.Text{
		Size:  9,
		Align: align.Left,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New("Prepared for", label)),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(data.ClientName, value)),
		),
	)

	if data.Address != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(data.Address, value))))
	}

	contact := data.ClientEmail
	if data.ClientPhone != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += data.ClientPhone
	}
	if contact != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(contact, value))))
	}

	m.AddRows(row.New(4))
}

// addProjectSection adds the roof details the estimate was computed from.
func addProjectSection(m core.Maroto, data QuoteExportData) {
	label := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	value := props.Text{
		Size:  9,
		Align: align.Left,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New("Project details", label)),
		),
		row.New(6).Add(
			col.New(4).Add(text.New(fmt.Sprintf("Material: %s", data.Material), value)),
			col.New(4).Add(text.New(fmt.Sprintf("Roof type: %s", data.RoofType), value)),
			col.New(4).Add(text.New(fmt.Sprintf("Area: %s sq. ft.", formatQty(data.AreaSqFt)), value)),
		),
	)

	m.AddRows(row.New(4))
}

// addBreakdownTable adds the cost breakdown rows and the total.
func addBreakdownTable(m core.Maroto, breakdown Estimate) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Item", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Amount", headerTextRight)).WithStyle(&headerCell),
		),
	)

	leftText := props.Text{Size: 9, Align: align.Left}
	rightText := props.Text{Size: 9, Align: align.Right}

	lines := []struct {
		label  string
		amount float64
	}{
		{"Materials", breakdown.MaterialCost},
		{"Labor", breakdown.LaborCost},
		{"Additional costs (disposal, permits)", breakdown.AdditionalCosts},
	}
	for _, line := range lines {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(line.label, leftText)),
				col.New(4).Add(text.New(FormatUSD(line.amount), rightText)),
			),
		)
	}

	totalBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	totalCell := &props.Cell{BackgroundColor: totalBg}
	totalText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	totalLabel := totalText
	totalLabel.Align = align.Left

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Total Estimate", totalLabel)).WithStyle(totalCell),
			col.New(4).Add(text.New(FormatUSD(breakdown.Total), totalText)).WithStyle(totalCell),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(AmountToWords(breakdown.Total), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)
}

// addQuoteFooter adds notes plus the standard disclaimer.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	small := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	if data.Notes != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(fmt.Sprintf("Notes: %s", data.Notes), small)),
			),
		)
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("This estimate is based on the provided measurements and selected materials. "+
					"The final price may vary based on inspection findings.", small),
			),
		),
	)
}

// formatQty renders a quantity without trailing zeros: whole numbers plain,
// everything else with 2 decimals.
func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%.0f", q)
	}
	return fmt.Sprintf("%.2f", q)
}
