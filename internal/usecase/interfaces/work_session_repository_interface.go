package interfaces

import (
	"context"
	"time"

	"carrozzeria/internal/domain/entities"
)

//go:generate mockgen -source=work_session_repository_interface.go -destination=mocks/mock_work_session_repository.go -package=mock_interfaces

// IWorkSessionRepository persists labor sessions.
//
// Open must be atomic with respect to the one-open-session-per-(employee, order)
// rule and return ErrOpenSessionConflict when it is violated. Close must only
// succeed on a still-open session and return ErrSessionNotOpen otherwise.
// Lookups return a zero-value session when nothing matches.
type IWorkSessionRepository interface {
	Open(ctx context.Context, s entities.WorkSession) (entities.WorkSession, error)
	Close(ctx context.Context, id string, end time.Time, durationMinutes int) (entities.WorkSession, error)
	GetByID(ctx context.Context, id string) (entities.WorkSession, error)
	FindOpen(ctx context.Context, employeeID, orderID string) (entities.WorkSession, error)
	ListOpen(ctx context.Context) ([]entities.WorkSession, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.WorkSession, error)
	// ListStartedBetween returns sessions with start in [from, to]; an empty
	// employeeID matches every employee.
	ListStartedBetween(ctx context.Context, from, to time.Time, employeeID string) ([]entities.WorkSession, error)
}
