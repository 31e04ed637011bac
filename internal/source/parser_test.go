package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fincast/internal/model"
)

// writeStatement creates a temp CSV file and returns a DiscoveredFile for it.
func writeStatement(t *testing.T, lines ...string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{Path: path, Format: FormatCSV}
}

func TestParseFile_BasicStatement(t *testing.T) {
	df := writeStatement(t,
		"Date,Description,Amount,Category",
		"2026-01-15,Salary,3000.00,income",
		"2026-01-16,Groceries,-84.27,food",
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("len = %d, want 2", len(result.Transactions))
	}

	salary := result.Transactions[0]
	if salary.Direction != model.Income {
		t.Errorf("Direction = %v, want income", salary.Direction)
	}
	if salary.Amount != 3000 {
		t.Errorf("Amount = %v, want 3000", salary.Amount)
	}
	if !salary.Date.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", salary.Date)
	}

	groceries := result.Transactions[1]
	if groceries.Direction != model.Expense {
		t.Errorf("Direction = %v, want expense", groceries.Direction)
	}
	if groceries.Amount != 84.27 {
		t.Errorf("Amount = %v, want positive 84.27", groceries.Amount)
	}
	if groceries.Category != "food" {
		t.Errorf("Category = %q, want food", groceries.Category)
	}
}

func TestParseFile_HeaderNotFirstRow(t *testing.T) {
	df := writeStatement(t,
		"Account statement,,",
		"Exported 2026-02-01,,",
		"Date,Text,Amount",
		"2026-01-10,Rent,-1200",
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 1 {
		t.Fatalf("len = %d, want 1", len(result.Transactions))
	}
	if result.Transactions[0].Description != "Rent" {
		t.Errorf("Description = %q, want Rent", result.Transactions[0].Description)
	}
}

func TestParseFile_SkipsBadRows(t *testing.T) {
	df := writeStatement(t,
		"Date,Description,Amount",
		"2026-01-10,Coffee,-4.50",
		"not a date,Broken,-1.00",
		"2026-01-11,,-2.00",
		"2026-01-12,Zero amount,0",
		"2026-01-13,Lunch,-12.00",
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 2 {
		t.Errorf("len = %d, want 2", len(result.Transactions))
	}
	if result.SkippedRows != 3 {
		t.Errorf("SkippedRows = %d, want 3", result.SkippedRows)
	}
}

func TestParseFile_NoHeader(t *testing.T) {
	df := writeStatement(t,
		"foo,bar,baz",
		"1,2,3",
	)

	result := ParseFile(df)
	if result.Err == nil {
		t.Error("expected error for statement without a recognizable header")
	}
}

func TestParseFile_AmountFormats(t *testing.T) {
	df := writeStatement(t,
		"Date,Description,Amount",
		`2026-01-10,Thousands,"-1,234.56"`,
		`2026-01-11,Comma decimal,"-99,50"`,
		"2026-01-12,Currency prefix,$25.00",
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Transactions) != 3 {
		t.Fatalf("len = %d, want 3", len(result.Transactions))
	}
	if result.Transactions[0].Amount != 1234.56 {
		t.Errorf("thousands = %v, want 1234.56", result.Transactions[0].Amount)
	}
	if result.Transactions[1].Amount != 99.50 {
		t.Errorf("comma decimal = %v, want 99.50", result.Transactions[1].Amount)
	}
	if result.Transactions[2].Amount != 25 {
		t.Errorf("currency prefix = %v, want 25", result.Transactions[2].Amount)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.xlsx", "c.txt", "d.CSV"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("len = %d, want 3 (txt excluded)", len(files))
	}

	formats := map[Format]int{}
	for _, f := range files {
		formats[f.Format]++
	}
	if formats[FormatCSV] != 2 || formats[FormatXLSX] != 1 {
		t.Errorf("formats = %v, want 2 csv / 1 xlsx", formats)
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.csv")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(path)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0].Path != path {
		t.Errorf("files = %+v, want just %s", files, path)
	}
}
