package repository

import (
	"context"

	"carrozzeria/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CounterGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISequenceGenerator = (*CounterGormRepository)(nil)

func NewCounterGormRepository(db *gorm.DB) *CounterGormRepository {
	return &CounterGormRepository{db: db}
}

// Next increments the named counter with an upsert and reads it back inside
// the same transaction.
func (r *CounterGormRepository) Next(ctx context.Context, name string) (int64, error) {
	var row counterRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("value + 1")}),
		}).Create(&counterRow{Name: name, Value: 1}).Error
		if err != nil {
			return err
		}
		return tx.Where("name = ?", name).Take(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.Value, nil
}
