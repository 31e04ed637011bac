// Package source discovers and parses bank statement files.
package source

import "fincast/internal/model"

// Format identifies a supported statement file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DiscoveredFile is a statement file found by the scanner.
type DiscoveredFile struct {
	Path   string
	Format Format
}

// ParseResult holds the output of parsing a single statement file.
type ParseResult struct {
	Transactions []model.Transaction
	SkippedRows  int
	Err          error
}
