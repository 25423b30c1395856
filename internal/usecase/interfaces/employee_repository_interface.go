package interfaces

import (
	"context"

	"carrozzeria/internal/domain/entities"
)

//go:generate mockgen -source=employee_repository_interface.go -destination=mocks/mock_employee_repository.go -package=mock_interfaces

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
}
