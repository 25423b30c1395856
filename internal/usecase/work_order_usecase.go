package usecase

import (
	"context"
	"log"
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// WorkOrderNumberPrefix prefixes order numbers (ordine di lavoro).
const WorkOrderNumberPrefix = "OdL"

type CreateWorkOrderInput struct {
	Description  string
	ClientName   string
	VehiclePlate string
	VehicleMake  string
	VehicleModel string
}

type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	sequence interfaces.ISequenceGenerator
	now      Clock
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, sequence interfaces.ISequenceGenerator) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, sequence: sequence, now: systemClock}
}

func (u *WorkOrderUseCase) WithClock(now Clock) *WorkOrderUseCase {
	u.now = now
	return u
}

func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrder
	}

	now := u.now()
	seq, err := u.sequence.Next(ctx, labor.SequenceName(WorkOrderNumberPrefix, now.Year()))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	o := entities.WorkOrder{
		ID:           uuid.NewString(),
		Number:       labor.FormatDocumentNumber(WorkOrderNumberPrefix, now.Year(), seq),
		Description:  in.Description,
		ClientName:   strings.TrimSpace(in.ClientName),
		VehiclePlate: strings.ToUpper(strings.TrimSpace(in.VehiclePlate)),
		VehicleMake:  strings.TrimSpace(in.VehicleMake),
		VehicleModel: strings.TrimSpace(in.VehicleModel),
		Status:       entities.WorkOrderStatusWaiting,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	log.Printf("[work-order][usecase] created order_id=%s number=%s", created.ID, created.Number)
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return o, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.WorkOrder{}, ErrInvalidWorkOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}
