package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var base = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, MigrateGorm(db))
	return db
}

func TestWorkSessionGormRepository_OpenClose(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkSessionGormRepository(newTestDB(t))

	s1 := entities.WorkSession{ID: "s-1", EmployeeID: "e-1", OrderID: "o-1", StartTime: base, CreatedAt: base}
	_, err := repo.Open(ctx, s1)
	require.NoError(t, err)

	_, err = repo.Open(ctx, entities.WorkSession{ID: "s-2", EmployeeID: "e-1", OrderID: "o-1", StartTime: base.Add(time.Minute), CreatedAt: base})
	assert.ErrorIs(t, err, interfaces.ErrOpenSessionConflict)

	// a different order is allowed at the same time
	_, err = repo.Open(ctx, entities.WorkSession{ID: "s-3", EmployeeID: "e-1", OrderID: "o-2", StartTime: base, CreatedAt: base})
	require.NoError(t, err)

	open, err := repo.FindOpen(ctx, "e-1", "o-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", open.ID)
	assert.True(t, open.IsOpen())

	closed, err := repo.Close(ctx, "s-1", base.Add(90*time.Minute), 90)
	require.NoError(t, err)
	require.NotNil(t, closed.EndTime)
	require.NotNil(t, closed.DurationMinutes)
	assert.Equal(t, 90, *closed.DurationMinutes)
	assert.True(t, closed.EndTime.Equal(base.Add(90*time.Minute)))

	_, err = repo.Close(ctx, "s-1", base.Add(2*time.Hour), 120)
	assert.ErrorIs(t, err, interfaces.ErrSessionNotOpen)

	missing, err := repo.Close(ctx, "nope", base, 0)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	none, err := repo.FindOpen(ctx, "e-1", "o-1")
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	// closing frees the pair
	_, err = repo.Open(ctx, entities.WorkSession{ID: "s-4", EmployeeID: "e-1", OrderID: "o-1", StartTime: base.Add(3 * time.Hour), CreatedAt: base})
	require.NoError(t, err)

	openAll, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	assert.Len(t, openAll, 2)

	byOrder, err := repo.ListByOrder(ctx, "o-1")
	require.NoError(t, err)
	require.Len(t, byOrder, 2)
	assert.Equal(t, "s-1", byOrder[0].ID)
}

func TestWorkSessionGormRepository_ConcurrentOpen(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkSessionGormRepository(newTestDB(t))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Open(ctx, entities.WorkSession{
				ID:         "s-" + itoa(i),
				EmployeeID: "e-1",
				OrderID:    "o-1",
				StartTime:  base,
				CreatedAt:  base,
			})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, interfaces.ErrOpenSessionConflict)
	}
	assert.Equal(t, 1, ok)
}

func TestWorkSessionGormRepository_ListStartedBetween(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkSessionGormRepository(newTestDB(t))

	for i, at := range []time.Time{base.Add(-48 * time.Hour), base, base.Add(4 * time.Hour), base.Add(72 * time.Hour)} {
		emp := "e-1"
		if i == 2 {
			emp = "e-2"
		}
		_, err := repo.Open(ctx, entities.WorkSession{ID: "s-" + itoa(i), EmployeeID: emp, OrderID: "o-" + itoa(i), StartTime: at, CreatedAt: at})
		require.NoError(t, err)
	}

	all, err := repo.ListStartedBetween(ctx, base, base.Add(24*time.Hour), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s-1", all[0].ID)
	assert.Equal(t, "s-2", all[1].ID)

	own, err := repo.ListStartedBetween(ctx, base, base.Add(24*time.Hour), "e-2")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "s-2", own[0].ID)
}

func TestEmployeeGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeGormRepository(newTestDB(t))

	_, err := repo.Create(ctx, entities.Employee{ID: "e-1", FirstName: "Mario", LastName: "Rossi", Role: entities.EmployeeRoleMechanic, HourlyRate: 20, Active: true, CreatedAt: base, UpdatedAt: base})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Employee{ID: "e-2", FirstName: "Anna", LastName: "Bianchi", Role: entities.EmployeeRolePainter, HourlyRate: 25, Active: false, CreatedAt: base, UpdatedAt: base})
	require.NoError(t, err)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bianchi", all[0].LastName)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "e-1", active[0].ID)

	e, err := repo.GetByID(ctx, "e-1")
	require.NoError(t, err)
	e.HourlyRate = 22.5
	e.Active = false
	updated, err := repo.Update(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, 22.5, updated.HourlyRate)
	assert.False(t, updated.Active)

	missing, err := repo.Update(ctx, entities.Employee{ID: "nope", FirstName: "x", LastName: "y"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestWorkOrderGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderGormRepository(newTestDB(t))

	_, err := repo.Create(ctx, entities.WorkOrder{ID: "o-1", Number: "OdL-2026-001", Description: "Paraurti", Status: entities.WorkOrderStatusWaiting, CreatedAt: base, UpdatedAt: base})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.WorkOrder{ID: "o-2", Number: "OdL-2026-002", Description: "Portiera", Status: entities.WorkOrderStatusWaiting, CreatedAt: base.Add(time.Hour), UpdatedAt: base})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o-2", list[0].ID)

	updated, err := repo.UpdateStatus(ctx, "o-1", entities.WorkOrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusCompleted, updated.Status)

	missing, err := repo.UpdateStatus(ctx, "nope", entities.WorkOrderStatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestQuoteGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteGormRepository(newTestDB(t))

	q := entities.Quote{
		ID:         "q-1",
		Number:     "PRV-2026-001",
		OrderID:    "o-1",
		Status:     entities.QuoteStatusDraft,
		IssueDate:  base,
		ExpiryDate: base.AddDate(0, 0, 30),
		Items:      []entities.QuoteItem{{Description: "Labor – 3.00 hours", Quantity: 3, UnitPrice: 70.0 / 3, Total: 70}},
		Subtotal:   70,
		TaxRate:    22,
		TaxAmount:  15.4,
		Total:      85.4,
		CreatedAt:  base,
		UpdatedAt:  base,
	}
	_, err := repo.Create(ctx, q)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "q-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Labor – 3.00 hours", got.Items[0].Description)
	assert.InDelta(t, 70.0/3, got.Items[0].UnitPrice, 1e-9)
	assert.True(t, got.ExpiryDate.Equal(base.AddDate(0, 0, 30)))

	sent, err := repo.UpdateStatus(ctx, "q-1", []entities.QuoteStatus{entities.QuoteStatusDraft}, entities.QuoteStatusSent)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusSent, sent.Status)

	// not draft any more
	again, err := repo.UpdateStatus(ctx, "q-1", []entities.QuoteStatus{entities.QuoteStatusDraft}, entities.QuoteStatusSent)
	require.NoError(t, err)
	assert.Empty(t, again.ID)

	list, err := repo.ListByOrderID(ctx, "o-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCounterGormRepository_Next(t *testing.T) {
	ctx := context.Background()
	repo := NewCounterGormRepository(newTestDB(t))

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Next(ctx, "PRV#2026")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	other, err := repo.Next(ctx, "PRV#2027")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestQuotePaymentGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuotePaymentGormRepository(newTestDB(t))

	_, err := repo.Create(ctx, entities.QuotePayment{ID: "p-1", QuoteID: "q-1", Amount: 85.4, Date: base, Status: entities.PaymentStatusApproved, ProviderPayloadRaw: []byte(`{"id":1}`)})
	require.NoError(t, err)

	list, err := repo.ListByQuoteID(ctx, "q-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entities.PaymentStatusApproved, list[0].Status)
	assert.Equal(t, float64(1), list[0].ProviderPayload["id"])
}
