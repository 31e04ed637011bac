// Package export writes fincast projections to an Excel workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fincast/internal/model"
)

// Workbook bundles everything the export command writes.
type Workbook struct {
	Forecast     model.ForecastResult
	Optimization model.DebtOptimizationResult
	Schedules    []NamedSchedule
	Goals        []NamedProjection
}

// NamedSchedule pairs a debt name with its amortization schedule.
type NamedSchedule struct {
	Name    string
	Entries []model.ScheduleEntry
}

// NamedProjection pairs a goal name with its projection.
type NamedProjection struct {
	Name       string
	Projection model.GoalProjection
}

const dateLayout = "2006-01-02"

// Write creates the workbook at path, one sheet per section.
func Write(path string, wb Workbook) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeForecastSheet(f, wb.Forecast); err != nil {
		return fmt.Errorf("forecast sheet: %w", err)
	}
	if err := writeDebtSheets(f, wb.Optimization, wb.Schedules); err != nil {
		return fmt.Errorf("debt sheets: %w", err)
	}
	if err := writeGoalsSheet(f, wb.Goals); err != nil {
		return fmt.Errorf("goals sheet: %w", err)
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeForecastSheet(f *excelize.File, forecast model.ForecastResult) error {
	const sheet = "Forecast"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Date", "Balance", "Income", "Expenses", "Net"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, pt := range forecast.DailyBalances {
		row := []interface{}{
			pt.Date.Format(dateLayout),
			pt.Balance,
			pt.Income,
			pt.Expenses,
			pt.Net,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	summaryStart := len(forecast.DailyBalances) + 3
	summary := [][]interface{}{
		{"Min balance", forecast.MinBalance, forecast.MinBalanceDate.Format(dateLayout)},
		{"Runway days", forecast.RunwayDays},
		{"Ending balance", forecast.EndingBalance()},
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", summaryStart+i)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}

	return nil
}

func writeDebtSheets(f *excelize.File, opt model.DebtOptimizationResult, schedules []NamedSchedule) error {
	const sheet = "Debts"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Strategy", "Debt", "Months", "Interest"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	rowIdx := 2
	for _, result := range []*model.StrategyResult{opt.Avalanche, opt.Snowball} {
		if result == nil {
			continue
		}
		for _, d := range result.Debts {
			row := []interface{}{string(result.Strategy), d.Name, d.MonthsToPayoff, d.TotalInterest}
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
				return err
			}
			rowIdx++
		}
	}

	if opt.Recommended != model.StrategyNone {
		row := []interface{}{"Recommended", string(opt.Recommended), "", opt.InterestSavings}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx+1), &row); err != nil {
			return err
		}
	}

	for _, sched := range schedules {
		if err := writeScheduleSheet(f, sched); err != nil {
			return err
		}
	}

	return nil
}

func writeScheduleSheet(f *excelize.File, sched NamedSchedule) error {
	sheet := "Schedule " + sched.Name
	if len(sheet) > 31 {
		// Excel sheet name limit.
		sheet = sheet[:31]
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Month", "Date", "Payment", "Principal", "Interest", "Balance"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, e := range sched.Entries {
		row := []interface{}{
			e.Month,
			e.Date.Format(dateLayout),
			e.Payment,
			e.Principal,
			e.Interest,
			e.Balance,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return nil
}

func writeGoalsSheet(f *excelize.File, goals []NamedProjection) error {
	const sheet = "Goals"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{
		"Goal", "Target", "Current", "Remaining", "Required monthly",
		"Available monthly", "Status", "Probability", "Est. completion",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, g := range goals {
		p := g.Projection
		row := []interface{}{
			g.Name,
			p.TargetAmount,
			p.CurrentAmount,
			p.RemainingAmount,
			p.RequiredMonthly,
			p.AvailableMonthly,
			string(p.Status),
			p.Probability,
			p.EstimatedCompletion.Format(dateLayout),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return nil
}
