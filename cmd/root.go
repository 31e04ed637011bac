package cmd

import (
	"fmt"
	"os"
	"time"

	"fincast/internal/config"
	"fincast/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDays  int
	flagDB    string
	flagAsOf  string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "fincast",
	Short: "Financial projection and optimization CLI",
	Long:  "Project balances, simulate scenarios, optimize debt payoff, and track savings goals.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Forecast horizon in days (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path override")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Projection date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openStore opens the database resolved from flags and config. Callers close
// it.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening store: %w", err)
	}
	return s, cfg, nil
}

// loadData is the shared read path: open the store, load the full snapshot,
// close it again.
func loadData() (store.Snapshot, config.Config, error) {
	s, cfg, err := openStore()
	if err != nil {
		return store.Snapshot{}, cfg, err
	}
	defer func() { _ = s.Close() }()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading data...\n")
	}

	snap, err := s.LoadSnapshot()
	if err != nil {
		return store.Snapshot{}, cfg, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %d transactions, %d recurring, %d debts, %d goals\n",
			len(snap.Transactions), len(snap.Recurring), len(snap.Debts), len(snap.Goals))
	}

	return snap, cfg, nil
}

// asOfDate resolves --as-of, defaulting to today at UTC midnight.
func asOfDate() (time.Time, error) {
	if flagAsOf == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	t, err := time.Parse("2006-01-02", flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: %w", flagAsOf, err)
	}
	return t, nil
}

// horizonDays resolves --days against the config default.
func horizonDays(cfg config.Config) int {
	if flagDays > 0 {
		return flagDays
	}
	if cfg.Forecast.DefaultDays > 0 {
		return cfg.Forecast.DefaultDays
	}
	return 90
}
