package cmd

import (
	"fmt"
	"os"

	"fincast/internal/model"
	"fincast/internal/source"
	"fincast/internal/store"

	"github.com/spf13/cobra"
)

var flagImportDryRun bool

var importCmd = &cobra.Command{
	Use:   "import PATH...",
	Short: "Import bank statements (CSV or XLSX)",
	Long: `Import parses bank statement files and records their rows as
transactions. Directories are scanned recursively for supported formats.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportDryRun, "dry-run", false, "Parse and report without saving")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	var files []source.DiscoveredFile
	for _, path := range args {
		found, err := source.Discover(path)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files found (want .csv or .xlsx)")
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	var all []model.Transaction
	var skipped int
	for _, df := range files {
		result := source.ParseFile(df)
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "  skipping %s: %v\n", df.Path, result.Err)
			continue
		}
		skipped += result.SkippedRows
		for _, txn := range result.Transactions {
			txn.ID = store.NewID()
			all = append(all, txn)
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  parsed %s: %d transactions\n", df.Path, len(result.Transactions))
		}
	}

	if flagImportDryRun {
		fmt.Printf("  Would import %d transactions from %d files (%d rows skipped)\n",
			len(all), len(files), skipped)
		return nil
	}

	if len(all) > 0 {
		if err := s.SaveTransactions(all); err != nil {
			return fmt.Errorf("saving transactions: %w", err)
		}
	}

	fmt.Printf("  Imported %d transactions from %d files", len(all), len(files))
	if skipped > 0 {
		fmt.Printf(" (%d rows skipped)", skipped)
	}
	fmt.Println()
	return nil
}
