package dashboard

import (
	"fmt"
	"io"
	"strings"
	"time"

	response "carrozzeria/internal/adapter/http/dto/response"

	"github.com/charmbracelet/lipgloss"
)

// row is one employee line of the board, shared by the TUI table and the
// plain renderer.
type row struct {
	Name     string
	Role     string
	Status   string
	Orders   string
	Vehicles string
	Elapsed  string
	Cost     string
}

func rows(snap response.DashboardResponse) []row {
	out := make([]row, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		orders := make([]string, 0, len(e.Sessions))
		vehicles := make([]string, 0, len(e.Sessions))
		for _, s := range e.Sessions {
			orders = append(orders, s.Order.Number)
			if s.Order.VehicleLabel != "" {
				vehicles = append(vehicles, s.Order.VehicleLabel)
			}
		}
		r := row{
			Name:     strings.TrimSpace(e.FirstName + " " + e.LastName),
			Role:     e.Role,
			Status:   e.Status,
			Orders:   dashIfEmpty(strings.Join(orders, ", ")),
			Vehicles: dashIfEmpty(strings.Join(vehicles, ", ")),
			Elapsed:  "-",
			Cost:     "-",
		}
		if len(e.Sessions) > 0 {
			r.Elapsed = formatMinutes(e.Cost.DurationMinutes)
			r.Cost = formatMoney(e.Cost.TotalCost)
		}
		out = append(out, r)
	}
	return out
}

func totalsLine(snap response.DashboardResponse) string {
	t := snap.Totals
	return fmt.Sprintf("working %d  available %d  sessions %d  time %s  cost %s",
		t.EmployeesWorking, t.EmployeesAvailable, t.ActiveSessions, formatMinutes(t.DurationMinutes), formatMoney(t.TotalCost))
}

var plainHeaders = []string{"EMPLOYEE", "ROLE", "STATUS", "ORDERS", "VEHICLES", "TIME", "COST"}

// RenderPlain writes the board without any terminal styling.
func RenderPlain(w io.Writer, snap response.DashboardResponse) error {
	cells := make([][]string, 0, len(snap.Employees))
	for _, r := range rows(snap) {
		cells = append(cells, []string{r.Name, r.Role, r.Status, r.Orders, r.Vehicles, r.Elapsed, r.Cost})
	}
	_, err := fmt.Fprintf(w, "Dashboard at %s\n%s%s\n",
		snap.GeneratedAt.Local().Format(time.DateTime), alignColumns(plainHeaders, cells), totalsLine(snap))
	return err
}

// alignColumns pads every column to its widest cell and puts a rule under
// the header.
func alignColumns(headers []string, cells [][]string) string {
	const gap = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	line := func(row []string) {
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", w-lipgloss.Width(cell)+gap))
			}
		}
		b.WriteString("\n")
	}

	line(headers)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	line(rule)
	for _, row := range cells {
		line(row)
	}
	return b.String()
}

func formatMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("€ %.2f", v)
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
