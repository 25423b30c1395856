package repository

import (
	"context"
	"errors"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEmployeeRepository = (*EmployeeGormRepository)(nil)

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	row := toEmployeeRow(e)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeRow(row), nil
}

func (r *EmployeeGormRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	var row employeeRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Employee{}, nil
		}
		return entities.Employee{}, err
	}
	return fromEmployeeRow(row), nil
}

func (r *EmployeeGormRepository) List(ctx context.Context, activeOnly bool) ([]entities.Employee, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var rows []employeeRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEmployeeRow(row))
	}
	sortEmployees(out)
	return out, nil
}

func (r *EmployeeGormRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	row := toEmployeeRow(e)
	res := r.db.WithContext(ctx).Model(&employeeRow{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"first_name":  row.FirstName,
		"last_name":   row.LastName,
		"role":        row.Role,
		"hourly_rate": row.HourlyRate,
		"active":      row.Active,
		"updated_at":  row.UpdatedAt,
	})
	if res.Error != nil {
		return entities.Employee{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Employee{}, nil
	}
	return r.GetByID(ctx, e.ID)
}

func toEmployeeRow(e entities.Employee) employeeRow {
	return employeeRow{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Role:       string(e.Role),
		HourlyRate: e.HourlyRate,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt.UTC(),
		UpdatedAt:  e.UpdatedAt.UTC(),
	}
}

func fromEmployeeRow(row employeeRow) entities.Employee {
	return entities.Employee{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Role:       entities.EmployeeRole(row.Role),
		HourlyRate: row.HourlyRate,
		Active:     row.Active,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
}
