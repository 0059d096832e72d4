package services

import (
	"strings"
	"testing"
)

func TestValidateLeadImport_AllValid(t *testing.T) {
	csvData := `Name,Email,Phone,Status,Source
Jane Smith,jane@example.com,555-0101,new,Website
Bob Jones,bob@example.com,555-0102,contacted,Referral
`
	result, err := ValidateLeadImport(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ValidateLeadImport() error = %v", err)
	}

	if result.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", result.TotalRows)
	}
	if result.ValidRows != 2 {
		t.Errorf("ValidRows = %d, want 2", result.ValidRows)
	}
	if result.ErrorRows != 0 {
		t.Errorf("ErrorRows = %d, want 0", result.ErrorRows)
	}
	if len(result.ParsedRows) != 2 {
		t.Fatalf("ParsedRows len = %d, want 2", len(result.ParsedRows))
	}
	if result.ParsedRows[0]["name"] != "Jane Smith" {
		t.Errorf("first row name = %q, want Jane Smith", result.ParsedRows[0]["name"])
	}
}

func TestValidateLeadImport_BadRowsAreSkippedNotFatal(t *testing.T) {
	csvData := `Name,Email,Status
,missing-name@example.com,new
Valid Lead,valid@example.com,new
Bad Email,not-an-email,new
Bad Status,status@example.com,frozen
`
	result, err := ValidateLeadImport(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ValidateLeadImport() error = %v", err)
	}

	if result.TotalRows != 4 {
		t.Errorf("TotalRows = %d, want 4", result.TotalRows)
	}
	if result.ValidRows != 1 {
		t.Errorf("ValidRows = %d, want 1", result.ValidRows)
	}
	if result.ErrorRows != 3 {
		t.Errorf("ErrorRows = %d, want 3", result.ErrorRows)
	}
	if len(result.Errors) != 3 {
		t.Fatalf("Errors len = %d, want 3", len(result.Errors))
	}

	// Row numbers are 1-indexed including the header.
	if result.Errors[0].Row != 2 || result.Errors[0].Field != "Name" {
		t.Errorf("first error = %+v, want Name error on row 2", result.Errors[0])
	}
}

func TestValidateLeadImport_DefaultStatus(t *testing.T) {
	csvData := `Name,Email
No Status,nostatus@example.com
`
	result, err := ValidateLeadImport(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ValidateLeadImport() error = %v", err)
	}

	if len(result.ParsedRows) != 1 {
		t.Fatalf("ParsedRows len = %d, want 1", len(result.ParsedRows))
	}
	if result.ParsedRows[0]["status"] != "new" {
		t.Errorf("status = %q, want default 'new'", result.ParsedRows[0]["status"])
	}
}

func TestValidateLeadImport_UnrecognizedColumnsIgnored(t *testing.T) {
	csvData := `Name,Favorite Color,Email
Jane,blue,jane@example.com
`
	result, err := ValidateLeadImport(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ValidateLeadImport() error = %v", err)
	}

	if result.ValidRows != 1 {
		t.Fatalf("ValidRows = %d, want 1", result.ValidRows)
	}
	if _, ok := result.ParsedRows[0]["favorite color"]; ok {
		t.Error("unrecognized column should not appear in parsed rows")
	}
}

func TestValidateLeadImport_HeaderOnly(t *testing.T) {
	csvData := `Name,Email
`
	_, err := ValidateLeadImport(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected error for a file with no data rows")
	}
}
