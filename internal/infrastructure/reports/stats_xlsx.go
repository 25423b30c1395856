// Package reports reads and writes workshop spreadsheets.
package reports

import (
	"fmt"
	"io"
	"strings"

	"carrozzeria/internal/domain/labor"
	"carrozzeria/internal/usecase"

	"github.com/xuri/excelize/v2"
)

const (
	SheetEmployees = "Employees"
	SheetOrders    = "Orders"
	SheetSummary   = "Summary"
)

var (
	employeeHeader = []interface{}{"Employee ID", "First name", "Last name", "Hourly rate", "Minutes", "Hours", "Cost", "Sessions", "Active", "Completed", "Avg session (min)"}
	orderHeader    = []interface{}{"Order ID", "Number", "Description", "Minutes", "Hours", "Cost", "Sessions", "Active", "Completed", "Employees"}
)

// WriteStatsWorkbook writes stats as an XLSX workbook with one sheet per
// breakdown and a summary sheet.
func WriteStatsWorkbook(w io.Writer, stats usecase.PeriodStats) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetEmployees); err != nil {
		return err
	}
	for _, name := range []string{SheetOrders, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	employees := make([][]interface{}, 0, len(stats.Employees))
	for _, e := range stats.Employees {
		employees = append(employees, []interface{}{
			e.EmployeeID, e.FirstName, e.LastName, labor.Round2(e.HourlyRate),
			e.TotalMinutes, labor.Round2(e.TotalHours), labor.Round2(e.TotalCost),
			e.SessionCount, e.ActiveSessions, e.CompletedSessions, labor.Round2(e.AverageSessionMinutes),
		})
	}
	if err := writeTable(f, SheetEmployees, employeeHeader, employees, bold); err != nil {
		return err
	}

	orders := make([][]interface{}, 0, len(stats.Orders))
	for _, o := range stats.Orders {
		orders = append(orders, []interface{}{
			o.OrderID, o.Number, o.Description,
			o.TotalMinutes, labor.Round2(o.TotalHours), labor.Round2(o.TotalCost),
			o.SessionCount, o.ActiveSessions, o.CompletedSessions, o.EmployeeCount,
		})
	}
	if err := writeTable(f, SheetOrders, orderHeader, orders, bold); err != nil {
		return err
	}

	employeeFilter := stats.EmployeeID
	if strings.TrimSpace(employeeFilter) == "" {
		employeeFilter = "all"
	}
	s := stats.Summary
	summary := [][]interface{}{
		{"From", stats.From.UTC().Format("2006-01-02 15:04")},
		{"To", stats.To.UTC().Format("2006-01-02 15:04")},
		{"Employee", employeeFilter},
		{"Employees", s.EmployeeCount},
		{"Total minutes", s.TotalMinutes},
		{"Total hours", labor.Round2(s.TotalHours)},
		{"Total cost", labor.Round2(s.TotalCost)},
		{"Sessions", s.TotalSessions},
		{"Active sessions", s.ActiveSessions},
		{"Completed sessions", s.CompletedSessions},
		{"Avg session (min)", labor.Round2(s.AverageSessionMinutes)},
	}
	if err := writeTable(f, SheetSummary, []interface{}{"Metric", "Value"}, summary, bold); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func writeTable(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
