package interfaces

import (
	"context"

	"carrozzeria/internal/domain/entities"
)

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/mock_work_order_repository.go -package=mock_interfaces

type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
}
