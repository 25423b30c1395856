package repository

import (
	"context"
	"errors"
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// WorkSessionGormRepository persists WorkSession entities through GORM.
// The partial unique index created by MigrateGorm enforces the open-session rule.
type WorkSessionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkSessionRepository = (*WorkSessionGormRepository)(nil)

func NewWorkSessionGormRepository(db *gorm.DB) *WorkSessionGormRepository {
	return &WorkSessionGormRepository{db: db}
}

func (r *WorkSessionGormRepository) Open(ctx context.Context, s entities.WorkSession) (entities.WorkSession, error) {
	row := toWorkSessionRow(s)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.WorkSession{}, interfaces.ErrOpenSessionConflict
		}
		return entities.WorkSession{}, err
	}
	return fromWorkSessionRow(row), nil
}

func (r *WorkSessionGormRepository) Close(ctx context.Context, id string, end time.Time, durationMinutes int) (entities.WorkSession, error) {
	var out entities.WorkSession
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&workSessionRow{}).
			Where("id = ? AND end_time IS NULL", id).
			Updates(map[string]interface{}{
				"end_time":         end.UTC(),
				"duration_minutes": durationMinutes,
			})
		if res.Error != nil {
			return res.Error
		}

		var row workSessionRow
		if err := tx.Where("id = ?", id).Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrSessionNotOpen
		}
		out = fromWorkSessionRow(row)
		return nil
	})
	if err != nil {
		return entities.WorkSession{}, err
	}
	return out, nil
}

func (r *WorkSessionGormRepository) GetByID(ctx context.Context, id string) (entities.WorkSession, error) {
	var row workSessionRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.WorkSession{}, nil
		}
		return entities.WorkSession{}, err
	}
	return fromWorkSessionRow(row), nil
}

func (r *WorkSessionGormRepository) FindOpen(ctx context.Context, employeeID, orderID string) (entities.WorkSession, error) {
	var row workSessionRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND order_id = ? AND end_time IS NULL", employeeID, orderID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.WorkSession{}, nil
		}
		return entities.WorkSession{}, err
	}
	return fromWorkSessionRow(row), nil
}

func (r *WorkSessionGormRepository) ListOpen(ctx context.Context) ([]entities.WorkSession, error) {
	return r.find(r.db.WithContext(ctx).Where("end_time IS NULL"))
}

func (r *WorkSessionGormRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.WorkSession, error) {
	return r.find(r.db.WithContext(ctx).Where("order_id = ?", orderID))
}

func (r *WorkSessionGormRepository) ListStartedBetween(ctx context.Context, from, to time.Time, employeeID string) ([]entities.WorkSession, error) {
	q := r.db.WithContext(ctx).Where("start_time >= ? AND start_time <= ?", from.UTC(), to.UTC())
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	return r.find(q)
}

func (r *WorkSessionGormRepository) find(q *gorm.DB) ([]entities.WorkSession, error) {
	var rows []workSessionRow
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.WorkSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromWorkSessionRow(row))
	}
	return out, nil
}

func toWorkSessionRow(s entities.WorkSession) workSessionRow {
	row := workSessionRow{
		ID:              s.ID,
		OrderID:         s.OrderID,
		EmployeeID:      s.EmployeeID,
		StartTime:       s.StartTime.UTC(),
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt.UTC(),
	}
	if s.EndTime != nil {
		end := s.EndTime.UTC()
		row.EndTime = &end
	}
	return row
}

func fromWorkSessionRow(row workSessionRow) entities.WorkSession {
	s := entities.WorkSession{
		ID:              row.ID,
		OrderID:         row.OrderID,
		EmployeeID:      row.EmployeeID,
		StartTime:       row.StartTime.UTC(),
		DurationMinutes: row.DurationMinutes,
		CreatedAt:       row.CreatedAt.UTC(),
	}
	if row.EndTime != nil {
		end := row.EndTime.UTC()
		s.EndTime = &end
	}
	return s
}
