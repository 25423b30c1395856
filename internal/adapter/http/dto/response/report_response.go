package response

import (
	"time"

	"carrozzeria/internal/domain/labor"
	"carrozzeria/internal/usecase"
)

type DashboardOrderResponse struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	Description  string `json:"description"`
	VehicleLabel string `json:"vehicle_label"`
}

type DashboardSessionResponse struct {
	SessionID string                 `json:"session_id"`
	StartTime time.Time              `json:"start_time"`
	Order     DashboardOrderResponse `json:"order"`
	Cost      CostSummaryResponse    `json:"cost"`
}

type DashboardEmployeeResponse struct {
	EmployeeID string                     `json:"employee_id"`
	FirstName  string                     `json:"first_name"`
	LastName   string                     `json:"last_name"`
	Role       string                     `json:"role"`
	HourlyRate float64                    `json:"hourly_rate"`
	Status     string                     `json:"status"`
	Sessions   []DashboardSessionResponse `json:"sessions"`
	Cost       CostSummaryResponse        `json:"cost"`
}

type DashboardTotalsResponse struct {
	EmployeesWorking   int     `json:"employees_working"`
	EmployeesAvailable int     `json:"employees_available"`
	ActiveSessions     int     `json:"active_sessions"`
	DurationMinutes    int     `json:"duration_minutes"`
	DurationHours      float64 `json:"duration_hours"`
	TotalCost          float64 `json:"total_cost"`
}

type DashboardResponse struct {
	GeneratedAt time.Time                   `json:"generated_at"`
	Employees   []DashboardEmployeeResponse `json:"employees"`
	Totals      DashboardTotalsResponse     `json:"totals"`
}

func FromDashboardSnapshot(s usecase.DashboardSnapshot) DashboardResponse {
	employees := make([]DashboardEmployeeResponse, 0, len(s.Employees))
	for _, e := range s.Employees {
		sessions := make([]DashboardSessionResponse, 0, len(e.Sessions))
		for _, ds := range e.Sessions {
			sessions = append(sessions, DashboardSessionResponse{
				SessionID: ds.Session.ID,
				StartTime: ds.Session.StartTime,
				Order: DashboardOrderResponse{
					ID:           ds.Order.ID,
					Number:       ds.Order.Number,
					Description:  ds.Order.Description,
					VehicleLabel: ds.Order.VehicleLabel,
				},
				Cost: FromCostSummary(ds.Summary),
			})
		}
		employees = append(employees, DashboardEmployeeResponse{
			EmployeeID: e.Employee.ID,
			FirstName:  e.Employee.FirstName,
			LastName:   e.Employee.LastName,
			Role:       string(e.Employee.Role),
			HourlyRate: labor.Round2(e.Employee.HourlyRate),
			Status:     string(e.Status),
			Sessions:   sessions,
			Cost:       FromCostSummary(e.Summary),
		})
	}
	return DashboardResponse{
		GeneratedAt: s.GeneratedAt,
		Employees:   employees,
		Totals: DashboardTotalsResponse{
			EmployeesWorking:   s.Totals.EmployeesWorking,
			EmployeesAvailable: s.Totals.EmployeesAvailable,
			ActiveSessions:     s.Totals.ActiveSessions,
			DurationMinutes:    s.Totals.InProgressMinutes,
			DurationHours:      labor.Round2(s.Totals.InProgressHours),
			TotalCost:          labor.Round2(s.Totals.InProgressCost),
		},
	}
}

type EmployeeTotalsResponse struct {
	EmployeeID            string  `json:"employee_id"`
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	HourlyRate            float64 `json:"hourly_rate"`
	DurationMinutes       int     `json:"duration_minutes"`
	DurationHours         float64 `json:"duration_hours"`
	TotalCost             float64 `json:"total_cost"`
	SessionCount          int     `json:"session_count"`
	ActiveSessions        int     `json:"active_sessions"`
	CompletedSessions     int     `json:"completed_sessions"`
	AverageSessionMinutes float64 `json:"average_session_minutes"`
}

func FromEmployeeTotals(list []labor.EmployeeTotals) []EmployeeTotalsResponse {
	out := make([]EmployeeTotalsResponse, 0, len(list))
	for _, t := range list {
		out = append(out, EmployeeTotalsResponse{
			EmployeeID:            t.EmployeeID,
			FirstName:             t.FirstName,
			LastName:              t.LastName,
			HourlyRate:            labor.Round2(t.HourlyRate),
			DurationMinutes:       t.TotalMinutes,
			DurationHours:         labor.Round2(t.TotalHours),
			TotalCost:             labor.Round2(t.TotalCost),
			SessionCount:          t.SessionCount,
			ActiveSessions:        t.ActiveSessions,
			CompletedSessions:     t.CompletedSessions,
			AverageSessionMinutes: labor.Round2(t.AverageSessionMinutes),
		})
	}
	return out
}

type OrderTotalsResponse struct {
	OrderID           string  `json:"order_id"`
	Number            string  `json:"number,omitempty"`
	Description       string  `json:"description,omitempty"`
	DurationMinutes   int     `json:"duration_minutes"`
	DurationHours     float64 `json:"duration_hours"`
	TotalCost         float64 `json:"total_cost"`
	SessionCount      int     `json:"session_count"`
	ActiveSessions    int     `json:"active_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	EmployeeCount     int     `json:"employee_count"`
}

func fromOrderTotals(t labor.OrderTotals, number, description string) OrderTotalsResponse {
	return OrderTotalsResponse{
		OrderID:           t.OrderID,
		Number:            number,
		Description:       description,
		DurationMinutes:   t.TotalMinutes,
		DurationHours:     labor.Round2(t.TotalHours),
		TotalCost:         labor.Round2(t.TotalCost),
		SessionCount:      t.SessionCount,
		ActiveSessions:    t.ActiveSessions,
		CompletedSessions: t.CompletedSessions,
		EmployeeCount:     t.EmployeeCount,
	}
}

type StatsSummaryResponse struct {
	EmployeeCount         int     `json:"employee_count"`
	DurationMinutes       int     `json:"duration_minutes"`
	DurationHours         float64 `json:"duration_hours"`
	TotalCost             float64 `json:"total_cost"`
	TotalSessions         int     `json:"total_sessions"`
	ActiveSessions        int     `json:"active_sessions"`
	CompletedSessions     int     `json:"completed_sessions"`
	AverageSessionMinutes float64 `json:"average_session_minutes"`
}

type StatsResponse struct {
	From        time.Time                `json:"from"`
	To          time.Time                `json:"to"`
	EmployeeID  string                   `json:"employee_id,omitempty"`
	GeneratedAt time.Time                `json:"generated_at"`
	Employees   []EmployeeTotalsResponse `json:"employees"`
	Orders      []OrderTotalsResponse    `json:"orders"`
	Summary     StatsSummaryResponse     `json:"summary"`
}

func FromPeriodStats(s usecase.PeriodStats) StatsResponse {
	orders := make([]OrderTotalsResponse, 0, len(s.Orders))
	for _, o := range s.Orders {
		orders = append(orders, fromOrderTotals(o.OrderTotals, o.Number, o.Description))
	}
	return StatsResponse{
		From:        s.From,
		To:          s.To,
		EmployeeID:  s.EmployeeID,
		GeneratedAt: s.GeneratedAt,
		Employees:   FromEmployeeTotals(s.Employees),
		Orders:      orders,
		Summary: StatsSummaryResponse{
			EmployeeCount:         s.Summary.EmployeeCount,
			DurationMinutes:       s.Summary.TotalMinutes,
			DurationHours:         labor.Round2(s.Summary.TotalHours),
			TotalCost:             labor.Round2(s.Summary.TotalCost),
			TotalSessions:         s.Summary.TotalSessions,
			ActiveSessions:        s.Summary.ActiveSessions,
			CompletedSessions:     s.Summary.CompletedSessions,
			AverageSessionMinutes: labor.Round2(s.Summary.AverageSessionMinutes),
		},
	}
}

type OrderLaborResponse struct {
	Order     WorkOrderResponse        `json:"order"`
	Employees []EmployeeTotalsResponse `json:"employees"`
	Totals    OrderTotalsResponse      `json:"totals"`
}

func FromOrderLabor(l usecase.OrderLabor) OrderLaborResponse {
	return OrderLaborResponse{
		Order:     FromWorkOrder(l.Order),
		Employees: FromEmployeeTotals(l.Employees),
		Totals:    fromOrderTotals(l.Totals, l.Order.Number, l.Order.Description),
	}
}
