package repository

import (
	"context"
	"errors"
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type QuoteGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRepository = (*QuoteGormRepository)(nil)

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository {
	return &QuoteGormRepository{db: db}
}

func (r *QuoteGormRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row := toQuoteRow(q)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRow(row), nil
}

func (r *QuoteGormRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).Preload("Items", orderItems).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return fromQuoteRow(row), nil
}

func (r *QuoteGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Quote, error) {
	var rows []quoteRow
	err := r.db.WithContext(ctx).Preload("Items", orderItems).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromQuoteRow(row))
	}
	return out, nil
}

func (r *QuoteGormRepository) UpdateStatus(ctx context.Context, id string, from []entities.QuoteStatus, status entities.QuoteStatus) (entities.Quote, error) {
	q := r.db.WithContext(ctx).Model(&quoteRow{}).Where("id = ?", id)
	if len(from) > 0 {
		allowed := make([]string, 0, len(from))
		for _, s := range from {
			allowed = append(allowed, string(s))
		}
		q = q.Where("status IN ?", allowed)
	}
	res := q.Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Quote{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, id)
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func toQuoteRow(q entities.Quote) quoteRow {
	items := make([]quoteItemRow, 0, len(q.Items))
	for i, li := range q.Items {
		items = append(items, quoteItemRow{
			QuoteID:     q.ID,
			Position:    i,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}
	return quoteRow{
		ID:         q.ID,
		Number:     q.Number,
		OrderID:    q.OrderID,
		Status:     string(q.Status),
		IssueDate:  q.IssueDate.UTC(),
		ExpiryDate: q.ExpiryDate.UTC(),
		Items:      items,
		Notes:      q.Notes,
		Subtotal:   q.Subtotal,
		TaxRate:    q.TaxRate,
		TaxAmount:  q.TaxAmount,
		Total:      q.Total,
		CreatedAt:  q.CreatedAt.UTC(),
		UpdatedAt:  q.UpdatedAt.UTC(),
	}
}

func fromQuoteRow(row quoteRow) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(row.Items))
	for _, li := range row.Items {
		items = append(items, entities.QuoteItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}
	return entities.Quote{
		ID:         row.ID,
		Number:     row.Number,
		OrderID:    row.OrderID,
		Status:     entities.QuoteStatus(row.Status),
		IssueDate:  row.IssueDate.UTC(),
		ExpiryDate: row.ExpiryDate.UTC(),
		Items:      items,
		Notes:      row.Notes,
		Subtotal:   row.Subtotal,
		TaxRate:    row.TaxRate,
		TaxAmount:  row.TaxAmount,
		Total:      row.Total,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
}
