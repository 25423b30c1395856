package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
	"carrozzeria/internal/usecase/interfaces"
)

type EmployeeStatus string

const (
	EmployeeStatusWorking   EmployeeStatus = "working"
	EmployeeStatusAvailable EmployeeStatus = "available"
)

type OrderSummary struct {
	ID           string
	Number       string
	Description  string
	VehicleLabel string
}

type DashboardSession struct {
	Session entities.WorkSession
	Order   OrderSummary
	Summary entities.CostSummary
}

type DashboardEntry struct {
	Employee entities.Employee
	Status   EmployeeStatus
	Sessions []DashboardSession
	// Summary sums every open session of the employee.
	Summary entities.CostSummary
}

type DashboardTotals struct {
	EmployeesWorking   int
	EmployeesAvailable int
	ActiveSessions     int
	InProgressMinutes  int
	InProgressHours    float64
	InProgressCost     float64
}

type DashboardSnapshot struct {
	GeneratedAt time.Time
	Employees   []DashboardEntry
	Totals      DashboardTotals
}

type OrderStats struct {
	labor.OrderTotals
	Number      string
	Description string
}

type PeriodStats struct {
	From        time.Time
	To          time.Time
	EmployeeID  string
	GeneratedAt time.Time
	Employees   []labor.EmployeeTotals
	Orders      []OrderStats
	Summary     labor.Summary
}

type OrderLabor struct {
	Order     entities.WorkOrder
	Employees []labor.EmployeeTotals
	Totals    labor.OrderTotals
}

// ILaborReportUseCase aggregates sessions for the dashboard and the stats pages.
//
// Snapshot and StatsForPeriod are read-time aggregations: every call rescans
// sessions and employees and prices open sessions against the current time.
// Storage failures on these two reads are logged and degrade to empty data.
type ILaborReportUseCase interface {
	Snapshot(ctx context.Context) (DashboardSnapshot, error)
	StatsForPeriod(ctx context.Context, employeeID string, from, to time.Time) (PeriodStats, error)
	OrderLabor(ctx context.Context, orderID string) (OrderLabor, error)
}

type LaborReportUseCase struct {
	sessions  interfaces.IWorkSessionRepository
	employees interfaces.IEmployeeRepository
	orders    interfaces.IWorkOrderRepository
	now       Clock
}

var _ ILaborReportUseCase = (*LaborReportUseCase)(nil)

func NewLaborReportUseCase(sessions interfaces.IWorkSessionRepository, employees interfaces.IEmployeeRepository, orders interfaces.IWorkOrderRepository) *LaborReportUseCase {
	return &LaborReportUseCase{sessions: sessions, employees: employees, orders: orders, now: systemClock}
}

func (u *LaborReportUseCase) WithClock(now Clock) *LaborReportUseCase {
	u.now = now
	return u
}

func (u *LaborReportUseCase) Snapshot(ctx context.Context) (DashboardSnapshot, error) {
	now := u.now()

	employees, err := u.employees.List(ctx, true)
	if err != nil {
		log.Printf("[labor][dashboard] employee fetch failed, rendering empty err=%v", err)
		employees = nil
	}
	open, err := u.sessions.ListOpen(ctx)
	if err != nil {
		log.Printf("[labor][dashboard] open session fetch failed, rendering empty err=%v", err)
		open = nil
	}

	byEmployee := make(map[string][]entities.WorkSession)
	for _, s := range open {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	sort.SliceStable(employees, func(i, j int) bool {
		a, b := employees[i], employees[j]
		if !strings.EqualFold(a.LastName, b.LastName) {
			return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
		}
		return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
	})

	orders := make(map[string]OrderSummary)
	snap := DashboardSnapshot{GeneratedAt: now, Employees: make([]DashboardEntry, 0, len(employees))}
	for _, emp := range employees {
		entry := DashboardEntry{Employee: emp, Status: EmployeeStatusAvailable, Summary: labor.Summarize(0, emp.HourlyRate)}
		sessions := byEmployee[emp.ID]
		if len(sessions) == 0 {
			snap.Totals.EmployeesAvailable++
			snap.Employees = append(snap.Employees, entry)
			continue
		}

		entry.Status = EmployeeStatusWorking
		minutes := 0
		for _, s := range sessions {
			m := labor.LiveMinutes(s, now)
			minutes += m
			entry.Sessions = append(entry.Sessions, DashboardSession{
				Session: s,
				Order:   u.orderSummary(ctx, orders, s.OrderID),
				Summary: labor.Summarize(m, emp.HourlyRate),
			})
		}
		entry.Summary = labor.Summarize(minutes, emp.HourlyRate)

		snap.Totals.EmployeesWorking++
		snap.Totals.ActiveSessions += len(sessions)
		snap.Totals.InProgressMinutes += minutes
		snap.Totals.InProgressCost += entry.Summary.TotalCost
		snap.Employees = append(snap.Employees, entry)
	}
	snap.Totals.InProgressHours = labor.Hours(snap.Totals.InProgressMinutes)
	return snap, nil
}

func (u *LaborReportUseCase) orderSummary(ctx context.Context, cache map[string]OrderSummary, orderID string) OrderSummary {
	if s, ok := cache[orderID]; ok {
		return s
	}
	summary := OrderSummary{ID: orderID}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[labor][dashboard] order fetch failed order_id=%s err=%v", orderID, err)
	} else if order.ID != "" {
		summary.Number = order.Number
		summary.Description = order.Description
		summary.VehicleLabel = order.VehicleLabel()
	}
	cache[orderID] = summary
	return summary
}

func (u *LaborReportUseCase) StatsForPeriod(ctx context.Context, employeeID string, from, to time.Time) (PeriodStats, error) {
	employeeID = strings.TrimSpace(employeeID)
	if from.IsZero() || to.IsZero() || from.After(to) {
		return PeriodStats{}, ErrInvalidPeriod
	}
	now := u.now()

	sessions, err := u.sessions.ListStartedBetween(ctx, from, to, employeeID)
	if err != nil {
		log.Printf("[labor][stats] session fetch failed, returning empty err=%v", err)
		sessions = nil
	}
	employees, err := u.employees.List(ctx, false)
	if err != nil {
		log.Printf("[labor][stats] employee fetch failed err=%v", err)
		employees = nil
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		log.Printf("[labor][stats] order fetch failed err=%v", err)
		orders = nil
	}

	idx := labor.EmployeeIndex(employees)
	byEmployee := labor.GroupByEmployee(sessions, idx, now)

	orderIdx := make(map[string]entities.WorkOrder, len(orders))
	for _, o := range orders {
		orderIdx[o.ID] = o
	}
	byOrder := labor.GroupByOrder(sessions, idx, now)
	orderStats := make([]OrderStats, 0, len(byOrder))
	for _, t := range byOrder {
		o := orderIdx[t.OrderID]
		orderStats = append(orderStats, OrderStats{OrderTotals: t, Number: o.Number, Description: o.Description})
	}

	return PeriodStats{
		From:        from,
		To:          to,
		EmployeeID:  employeeID,
		GeneratedAt: now,
		Employees:   byEmployee,
		Orders:      orderStats,
		Summary:     labor.SummarizeEmployees(byEmployee),
	}, nil
}

func (u *LaborReportUseCase) OrderLabor(ctx context.Context, orderID string) (OrderLabor, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderLabor{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return OrderLabor{}, err
	}
	if order.ID == "" {
		return OrderLabor{}, ErrWorkOrderNotFound
	}

	sessions, err := u.sessions.ListByOrder(ctx, orderID)
	if err != nil {
		return OrderLabor{}, err
	}
	employees, err := u.employees.List(ctx, false)
	if err != nil {
		return OrderLabor{}, err
	}

	now := u.now()
	idx := labor.EmployeeIndex(employees)
	out := OrderLabor{
		Order:     order,
		Employees: labor.GroupByEmployee(sessions, idx, now),
		Totals:    labor.OrderTotals{OrderID: orderID},
	}
	if totals := labor.GroupByOrder(sessions, idx, now); len(totals) == 1 {
		out.Totals = totals[0]
	}
	return out, nil
}
