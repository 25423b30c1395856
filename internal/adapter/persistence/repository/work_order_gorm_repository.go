package repository

import (
	"context"
	"errors"
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type WorkOrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderGormRepository)(nil)

func NewWorkOrderGormRepository(db *gorm.DB) *WorkOrderGormRepository {
	return &WorkOrderGormRepository{db: db}
}

func (r *WorkOrderGormRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	row := toWorkOrderRow(o)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderRow(row), nil
}

func (r *WorkOrderGormRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var row workOrderRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderRow(row), nil
}

func (r *WorkOrderGormRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	var rows []workOrderRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.WorkOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromWorkOrderRow(row))
	}
	return out, nil
}

func (r *WorkOrderGormRepository) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	res := r.db.WithContext(ctx).Model(&workOrderRow{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.WorkOrder{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.WorkOrder{}, nil
	}
	return r.GetByID(ctx, id)
}

func toWorkOrderRow(o entities.WorkOrder) workOrderRow {
	return workOrderRow{
		ID:           o.ID,
		Number:       o.Number,
		Description:  o.Description,
		ClientName:   o.ClientName,
		VehiclePlate: o.VehiclePlate,
		VehicleMake:  o.VehicleMake,
		VehicleModel: o.VehicleModel,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt.UTC(),
		UpdatedAt:    o.UpdatedAt.UTC(),
	}
}

func fromWorkOrderRow(row workOrderRow) entities.WorkOrder {
	return entities.WorkOrder{
		ID:           row.ID,
		Number:       row.Number,
		Description:  row.Description,
		ClientName:   row.ClientName,
		VehiclePlate: row.VehiclePlate,
		VehicleMake:  row.VehicleMake,
		VehicleModel: row.VehicleModel,
		Status:       entities.WorkOrderStatus(row.Status),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
