package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// parseXLSX reads the first sheet of an Excel statement export and runs it
// through the same header detection as CSV.
func parseXLSX(path string) ParseResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ParseResult{Err: fmt.Errorf("opening %s: %w", path, err)}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ParseResult{Err: fmt.Errorf("%s: no sheets", path)}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ParseResult{Err: fmt.Errorf("reading %s: %w", path, err)}
	}

	return parseRows(rows)
}
