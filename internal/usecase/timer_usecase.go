package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// StopResult is a closed session together with its priced duration.
type StopResult struct {
	Session entities.WorkSession
	Summary entities.CostSummary
}

// ActiveSession is an open session priced against the current time.
type ActiveSession struct {
	Session entities.WorkSession
	Summary entities.CostSummary
}

// ITimerUseCase opens and closes labor sessions.
//
//   - Start => at most one open session per (employee, order); a second start conflicts.
//   - Stop  => closes the open session, duration truncated to whole minutes.
//   - Active => open sessions with live duration/cost.
//
// One employee may hold open sessions on different orders at the same time.
type ITimerUseCase interface {
	Start(ctx context.Context, employeeID, orderID string) (entities.WorkSession, error)
	Stop(ctx context.Context, employeeID, orderID string) (StopResult, error)
	Active(ctx context.Context, employeeID, orderID string) ([]ActiveSession, error)
}

type TimerUseCase struct {
	sessions  interfaces.IWorkSessionRepository
	employees interfaces.IEmployeeRepository
	orders    interfaces.IWorkOrderRepository
	now       Clock
}

var _ ITimerUseCase = (*TimerUseCase)(nil)

func NewTimerUseCase(sessions interfaces.IWorkSessionRepository, employees interfaces.IEmployeeRepository, orders interfaces.IWorkOrderRepository) *TimerUseCase {
	return &TimerUseCase{sessions: sessions, employees: employees, orders: orders, now: systemClock}
}

// WithClock replaces the time source.
func (u *TimerUseCase) WithClock(now Clock) *TimerUseCase {
	u.now = now
	return u
}

func (u *TimerUseCase) Start(ctx context.Context, employeeID, orderID string) (entities.WorkSession, error) {
	employeeID, orderID, err := normalizePair(employeeID, orderID)
	if err != nil {
		return entities.WorkSession{}, err
	}

	emp, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		return entities.WorkSession{}, err
	}
	if emp.ID == "" {
		return entities.WorkSession{}, ErrEmployeeNotFound
	}
	if !emp.Active {
		log.Printf("[timer][usecase] start refused, employee inactive employee_id=%s", employeeID)
		return entities.WorkSession{}, ErrEmployeeInactive
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.WorkSession{}, err
	}
	if order.ID == "" {
		return entities.WorkSession{}, ErrWorkOrderNotFound
	}

	now := u.now()
	s := entities.WorkSession{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		EmployeeID: employeeID,
		StartTime:  now,
		CreatedAt:  now,
	}
	created, err := u.sessions.Open(ctx, s)
	if err != nil {
		if errors.Is(err, interfaces.ErrOpenSessionConflict) {
			log.Printf("[timer][usecase] start conflict employee_id=%s order_id=%s", employeeID, orderID)
			return entities.WorkSession{}, ErrOpenSessionExists
		}
		return entities.WorkSession{}, err
	}
	log.Printf("[timer][usecase] started session_id=%s employee_id=%s order_id=%s", created.ID, employeeID, orderID)
	return created, nil
}

func (u *TimerUseCase) Stop(ctx context.Context, employeeID, orderID string) (StopResult, error) {
	employeeID, orderID, err := normalizePair(employeeID, orderID)
	if err != nil {
		return StopResult{}, err
	}

	emp, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		return StopResult{}, err
	}
	if emp.ID == "" {
		return StopResult{}, ErrEmployeeNotFound
	}

	open, err := u.sessions.FindOpen(ctx, employeeID, orderID)
	if err != nil {
		return StopResult{}, err
	}
	if open.ID == "" {
		return StopResult{}, ErrOpenSessionNotFound
	}
	if !open.IsOpen() {
		return StopResult{}, ErrSessionAlreadyClosed
	}

	end := u.now()
	minutes := labor.DurationMinutes(open.StartTime, end)
	closed, err := u.sessions.Close(ctx, open.ID, end, minutes)
	if err != nil {
		if errors.Is(err, interfaces.ErrSessionNotOpen) {
			log.Printf("[timer][usecase] stop lost race session_id=%s", open.ID)
			return StopResult{}, ErrSessionAlreadyClosed
		}
		return StopResult{}, err
	}
	if closed.ID == "" {
		return StopResult{}, ErrOpenSessionNotFound
	}

	summary := labor.Summarize(minutes, emp.HourlyRate)
	log.Printf("[timer][usecase] stopped session_id=%s minutes=%d cost=%.2f", closed.ID, minutes, summary.TotalCost)
	return StopResult{Session: closed, Summary: summary}, nil
}

func (u *TimerUseCase) Active(ctx context.Context, employeeID, orderID string) ([]ActiveSession, error) {
	employeeID = strings.TrimSpace(employeeID)
	orderID = strings.TrimSpace(orderID)

	open, err := u.sessions.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := u.employees.List(ctx, false)
	if err != nil {
		return nil, err
	}
	idx := labor.EmployeeIndex(employees)

	now := u.now()
	out := make([]ActiveSession, 0, len(open))
	for _, s := range open {
		if employeeID != "" && s.EmployeeID != employeeID {
			continue
		}
		if orderID != "" && s.OrderID != orderID {
			continue
		}
		out = append(out, ActiveSession{
			Session: s,
			Summary: labor.Summarize(labor.LiveMinutes(s, now), idx[s.EmployeeID].HourlyRate),
		})
	}
	return out, nil
}

func normalizePair(employeeID, orderID string) (string, string, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return "", "", ErrInvalidEmployeeID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", "", ErrInvalidOrderID
	}
	return employeeID, orderID, nil
}
