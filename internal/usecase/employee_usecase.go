package usecase

import (
	"context"
	"log"
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CreateEmployeeInput struct {
	FirstName  string
	LastName   string
	Role       entities.EmployeeRole
	HourlyRate float64
}

// UpdateEmployeeInput carries a partial update; nil fields are left untouched.
type UpdateEmployeeInput struct {
	FirstName  *string
	LastName   *string
	Role       *entities.EmployeeRole
	HourlyRate *float64
	Active     *bool
}

type IEmployeeUseCase interface {
	Create(ctx context.Context, in CreateEmployeeInput) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Employee, error)
	Update(ctx context.Context, id string, in UpdateEmployeeInput) (entities.Employee, error)
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
	now  Clock
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: systemClock}
}

func (u *EmployeeUseCase) Create(ctx context.Context, in CreateEmployeeInput) (entities.Employee, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" || in.LastName == "" || in.HourlyRate < 0 {
		return entities.Employee{}, ErrInvalidEmployee
	}
	if in.Role == "" {
		in.Role = entities.EmployeeRoleMechanic
	}

	now := u.now()
	e := entities.Employee{
		ID:         uuid.NewString(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Role:       in.Role,
		HourlyRate: in.HourlyRate,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Employee{}, err
	}
	log.Printf("[employee][usecase] created employee_id=%s rate=%.2f", created.ID, created.HourlyRate)
	return created, nil
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Employee, error) {
	return u.repo.List(ctx, activeOnly)
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, in UpdateEmployeeInput) (entities.Employee, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}

	if in.FirstName != nil {
		current.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		current.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Role != nil {
		current.Role = *in.Role
	}
	if in.HourlyRate != nil {
		current.HourlyRate = *in.HourlyRate
	}
	if in.Active != nil {
		current.Active = *in.Active
	}
	if current.FirstName == "" || current.LastName == "" || current.HourlyRate < 0 {
		return entities.Employee{}, ErrInvalidEmployee
	}
	current.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Employee{}, err
	}
	if updated.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return updated, nil
}
