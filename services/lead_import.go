package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RowError represents a single field-level error on one imported row.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing and validating an uploaded
// leads file. ParsedRows holds only the rows that passed validation and
// is what CommitLeadImport inserts.
type ImportResult struct {
	TotalRows  int                 `json:"total_rows"`
	ValidRows  int                 `json:"valid_rows"`
	ErrorRows  int                 `json:"error_rows"`
	Errors     []RowError          `json:"errors"`
	ParsedRows []map[string]string `json:"-"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// leadImportColumns maps accepted CSV header labels to lead fields. The
// Name column is the only required one.
var leadImportColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"phone":   "phone",
	"address": "address",
	"status":  "status",
	"source":  "source",
	"notes":   "notes",
}

// parseLeadCSV reads a CSV stream and returns headers plus data rows.
func parseLeadCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// ValidateLeadImport parses an uploaded leads CSV and validates every
// row. Rows with errors are reported and excluded from ParsedRows;
// valid rows survive even when their neighbors fail.
func ValidateLeadImport(file io.Reader) (*ImportResult, error) {
	headers, dataRows, err := parseLeadCSV(file)
	if err != nil {
		return nil, err
	}

	// Map columns to lead fields; unrecognized columns are ignored.
	columnKeys := make([]string, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		columnKeys[i] = leadImportColumns[norm]
	}

	result := &ImportResult{
		TotalRows:  len(dataRows),
		ParsedRows: make([]map[string]string, 0, len(dataRows)),
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for the header row
		rowData := make(map[string]string)

		for colIdx, key := range columnKeys {
			if key == "" || colIdx >= len(row) {
				continue
			}
			rowData[key] = strings.TrimSpace(row[colIdx])
		}

		rowErrors := validateLeadRow(rowNum, rowData)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}

		if rowData["status"] == "" {
			rowData["status"] = "new"
		}
		result.ParsedRows = append(result.ParsedRows, rowData)
		result.ValidRows++
	}

	return result, nil
}

func validateLeadRow(rowNum int, rowData map[string]string) []RowError {
	var errs []RowError

	if rowData["name"] == "" {
		errs = append(errs, RowError{Row: rowNum, Field: "Name", Message: "Name is required"})
	}
	if v := rowData["email"]; v != "" && !emailPattern.MatchString(v) {
		errs = append(errs, RowError{Row: rowNum, Field: "Email", Message: "Invalid email format"})
	}
	if v := rowData["status"]; v != "" && !ValidStatus(LeadStatuses, v) {
		errs = append(errs, RowError{
			Row:     rowNum,
			Field:   "Status",
			Message: fmt.Sprintf("Unknown status %q (expected one of: %s)", v, strings.Join(LeadStatuses, ", ")),
		})
	}

	return errs
}

// CommitLeadImport inserts the validated rows as lead records inside a
// single transaction and returns the number of created leads.
func CommitLeadImport(app *pocketbase.PocketBase, rows []map[string]string) (int, error) {
	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		return 0, fmt.Errorf("leads collection not found: %w", err)
	}

	created := 0
	err = app.RunInTransaction(func(txApp core.App) error {
		for _, rowData := range rows {
			record := core.NewRecord(leadsCol)
			for _, field := range []string{"name", "email", "phone", "address", "status", "source", "notes"} {
				if v := rowData[field]; v != "" {
					record.Set(field, v)
				}
			}
			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("save lead (row for %q): %w", rowData["name"], err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}
