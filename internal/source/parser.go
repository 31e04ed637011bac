package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fincast/internal/model"
)

// Recognized header names, lowercased. Statements vary; the first match per
// concern wins.
var (
	dateHeaders     = []string{"date", "transaction date", "posted date", "booking date"}
	descHeaders     = []string{"description", "text", "payee", "memo", "details"}
	amountHeaders   = []string{"amount", "value", "belopp"}
	categoryHeaders = []string{"category", "type"}
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02.01.2006",
	"2006/01/02",
}

// ParseFile reads a statement file and produces transactions. Rows that
// cannot be parsed are skipped and counted, never fatal.
func ParseFile(df DiscoveredFile) ParseResult {
	switch df.Format {
	case FormatCSV:
		return parseCSV(df.Path)
	case FormatXLSX:
		return parseXLSX(df.Path)
	default:
		return ParseResult{Err: fmt.Errorf("unsupported format %q", df.Format)}
	}
}

func parseCSV(path string) ParseResult {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ParseResult{Err: fmt.Errorf("reading %s: %w", path, err)}
		}
		rows = append(rows, record)
	}

	return parseRows(rows)
}

// columns holds the resolved header indices for a statement layout.
type columns struct {
	date     int
	desc     int
	amount   int
	category int
}

// parseRows locates the header row and converts the rows after it.
func parseRows(rows [][]string) ParseResult {
	cols, start, ok := findHeader(rows)
	if !ok {
		return ParseResult{Err: fmt.Errorf("no recognizable header row (need date, description, amount columns)")}
	}

	var result ParseResult
	for _, row := range rows[start:] {
		txn, ok := parseRow(row, cols)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result
}

func findHeader(rows [][]string) (columns, int, bool) {
	for i, row := range rows {
		cols := columns{date: -1, desc: -1, amount: -1, category: -1}
		for j, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			switch {
			case cols.date < 0 && matchHeader(name, dateHeaders):
				cols.date = j
			case cols.desc < 0 && matchHeader(name, descHeaders):
				cols.desc = j
			case cols.amount < 0 && matchHeader(name, amountHeaders):
				cols.amount = j
			case cols.category < 0 && matchHeader(name, categoryHeaders):
				cols.category = j
			}
		}
		if cols.date >= 0 && cols.desc >= 0 && cols.amount >= 0 {
			return cols, i + 1, true
		}
	}
	return columns{}, 0, false
}

func matchHeader(name string, candidates []string) bool {
	for _, c := range candidates {
		if name == c {
			return true
		}
	}
	return false
}

func parseRow(row []string, cols columns) (model.Transaction, bool) {
	if cols.date >= len(row) || cols.desc >= len(row) || cols.amount >= len(row) {
		return model.Transaction{}, false
	}

	date, ok := parseDate(row[cols.date])
	if !ok {
		return model.Transaction{}, false
	}

	amount, ok := parseAmount(row[cols.amount])
	if !ok || amount.IsZero() {
		return model.Transaction{}, false
	}

	desc := strings.TrimSpace(row[cols.desc])
	if desc == "" {
		return model.Transaction{}, false
	}

	category := ""
	if cols.category >= 0 && cols.category < len(row) {
		category = strings.TrimSpace(row[cols.category])
	}

	// Statement convention: negative amounts are spending.
	direction := model.Income
	if amount.IsNegative() {
		direction = model.Expense
		amount = amount.Neg()
	}

	value, _ := amount.Round(2).Float64()

	return model.Transaction{
		Direction:   direction,
		Amount:      value,
		Description: desc,
		Category:    category,
		Date:        date,
	}, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount parses a statement amount exactly. Currency symbols and
// thousands separators are stripped; a comma decimal separator is accepted
// when no dot is present.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
