package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"fincast/internal/config"
	"fincast/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	balanceStr := strconv.FormatFloat(cfg.General.StartingBalance, 'f', -1, 64)
	days := cfg.Forecast.DefaultDays
	themeName := cfg.Appearance.Theme
	dbPath := cfg.General.DBPath

	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOptions[i] = huh.NewOption(t.Name, t.Name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current balance").
				Description("The balance forecasts start from.").
				Value(&balanceStr).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
						return fmt.Errorf("enter a number, e.g. 2500.00")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Default forecast horizon").
				Options(
					huh.NewOption("30 days", 30),
					huh.NewOption("90 days", 90),
					huh.NewOption("180 days", 180),
					huh.NewOption("365 days", 365),
				).
				Value(&days),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&themeName),
			huh.NewInput().
				Title("Database path").
				Description("Leave blank for the default location.").
				Value(&dbPath),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	balance, _ := strconv.ParseFloat(strings.TrimSpace(balanceStr), 64)
	cfg.General.StartingBalance = balance
	cfg.Forecast.DefaultDays = days
	cfg.Appearance.Theme = themeName
	cfg.General.DBPath = strings.TrimSpace(dbPath)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `fincast setup` anytime to reconfigure.")
	return nil
}
