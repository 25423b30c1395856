package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	DefaultQuotePrefix       = "PRV"
	DefaultQuoteValidityDays = 30
)

type QuoteSettings struct {
	Prefix       string
	ValidityDays int
	// TaxRate is a percentage (22 means 22%).
	TaxRate float64
}

// IQuoteUseCase manages quotes (preventivi).
//
//   - GenerateFromOrder => draft quote priced from the order's closed labor sessions
//   - Send / Accept / Reject => draft -> sent -> accepted | rejected
type IQuoteUseCase interface {
	GenerateFromOrder(ctx context.Context, orderID string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.Quote, error)
	Send(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	orders    interfaces.IWorkOrderRepository
	sessions  interfaces.IWorkSessionRepository
	employees interfaces.IEmployeeRepository
	sequence  interfaces.ISequenceGenerator
	settings  QuoteSettings
	now       Clock
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	orders interfaces.IWorkOrderRepository,
	sessions interfaces.IWorkSessionRepository,
	employees interfaces.IEmployeeRepository,
	sequence interfaces.ISequenceGenerator,
	settings QuoteSettings,
) *QuoteUseCase {
	if strings.TrimSpace(settings.Prefix) == "" {
		settings.Prefix = DefaultQuotePrefix
	}
	if settings.ValidityDays <= 0 {
		settings.ValidityDays = DefaultQuoteValidityDays
	}
	return &QuoteUseCase{
		repo:      repo,
		orders:    orders,
		sessions:  sessions,
		employees: employees,
		sequence:  sequence,
		settings:  settings,
		now:       systemClock,
	}
}

func (u *QuoteUseCase) WithClock(now Clock) *QuoteUseCase {
	u.now = now
	return u
}

func (u *QuoteUseCase) GenerateFromOrder(ctx context.Context, orderID string) (entities.Quote, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Quote{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Quote{}, err
	}
	if order.ID == "" {
		return entities.Quote{}, ErrWorkOrderNotFound
	}

	sessions, err := u.sessions.ListByOrder(ctx, orderID)
	if err != nil {
		return entities.Quote{}, err
	}
	closed := make([]entities.WorkSession, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsOpen() {
			closed = append(closed, s)
		}
	}

	employees, err := u.employees.List(ctx, false)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	perEmployee := labor.GroupByEmployee(closed, labor.EmployeeIndex(employees), now)
	totalMinutes := 0
	totalCost := 0.0
	for _, t := range perEmployee {
		totalMinutes += t.TotalMinutes
		totalCost += t.TotalCost
	}
	totalHours := labor.Hours(totalMinutes)

	items := make([]entities.QuoteItem, 0, 1)
	if totalMinutes > 0 {
		items = append(items, entities.QuoteItem{
			Description: fmt.Sprintf("Labor – %.2f hours", totalHours),
			Quantity:    totalHours,
			UnitPrice:   totalCost / totalHours,
			Total:       totalCost,
		})
	} else {
		log.Printf("[quote][usecase] order has no closed sessions, quote without labor line order_id=%s", orderID)
	}

	seq, err := u.sequence.Next(ctx, labor.SequenceName(u.settings.Prefix, now.Year()))
	if err != nil {
		return entities.Quote{}, err
	}

	taxAmount := totalCost * u.settings.TaxRate / 100
	q := entities.Quote{
		ID:         uuid.NewString(),
		Number:     labor.FormatDocumentNumber(u.settings.Prefix, now.Year(), seq),
		OrderID:    orderID,
		Status:     entities.QuoteStatusDraft,
		IssueDate:  now,
		ExpiryDate: now.AddDate(0, 0, u.settings.ValidityDays),
		Items:      items,
		Notes:      laborNotes(order, perEmployee, totalHours, totalCost),
		Subtotal:   totalCost,
		TaxRate:    u.settings.TaxRate,
		TaxAmount:  taxAmount,
		Total:      totalCost + taxAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] generated quote_id=%s number=%s order_id=%s hours=%.2f subtotal=%.2f", created.ID, created.Number, orderID, totalHours, totalCost)
	return created, nil
}

func laborNotes(order entities.WorkOrder, perEmployee []labor.EmployeeTotals, totalHours, totalCost float64) string {
	ref := order.Number
	if ref == "" {
		ref = order.ID
	}
	if len(perEmployee) == 0 {
		return fmt.Sprintf("No completed labor sessions for work order %s.", ref)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Labor breakdown for work order %s:\n", ref)
	for _, t := range perEmployee {
		name := strings.TrimSpace(t.FirstName + " " + t.LastName)
		if name == "" {
			name = t.EmployeeID
		}
		fmt.Fprintf(&b, "- %s: %.2f h × €%.2f/h = €%.2f\n", name, t.TotalHours, t.HourlyRate, t.TotalCost)
	}
	fmt.Fprintf(&b, "Total: %.2f h = €%.2f", totalHours, totalCost)
	return b.String()
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.Quote, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, []entities.QuoteStatus{entities.QuoteStatusDraft}, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, []entities.QuoteStatus{entities.QuoteStatusDraft, entities.QuoteStatusSent}, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, []entities.QuoteStatus{entities.QuoteStatusDraft, entities.QuoteStatusSent}, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, from []entities.QuoteStatus, to entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID != "" {
		return updated, nil
	}

	// Missing quote and disallowed transition look the same to the
	// conditional update; tell them apart for the caller.
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] transition refused quote_id=%s from=%s to=%s", id, current.Status, to)
	return entities.Quote{}, ErrInvalidQuoteTransition
}
