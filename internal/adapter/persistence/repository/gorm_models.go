package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Row models for the relational store. Money is stored as REAL; timestamps
// are always written in UTC.

type workSessionRow struct {
	ID              string    `gorm:"primaryKey"`
	OrderID         string    `gorm:"not null;index"`
	EmployeeID      string    `gorm:"not null;index"`
	StartTime       time.Time `gorm:"not null;index"`
	EndTime         *time.Time
	DurationMinutes *int
	CreatedAt       time.Time
}

func (workSessionRow) TableName() string { return "work_sessions" }

type employeeRow struct {
	ID         string `gorm:"primaryKey"`
	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null;index"`
	Role       string `gorm:"not null"`
	HourlyRate float64
	Active     bool `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (employeeRow) TableName() string { return "employees" }

type workOrderRow struct {
	ID           string `gorm:"primaryKey"`
	Number       string `gorm:"not null;uniqueIndex"`
	Description  string `gorm:"not null"`
	ClientName   string
	VehiclePlate string
	VehicleMake  string
	VehicleModel string
	Status       string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (workOrderRow) TableName() string { return "work_orders" }

type quoteRow struct {
	ID         string         `gorm:"primaryKey"`
	Number     string         `gorm:"not null;uniqueIndex"`
	OrderID    string         `gorm:"not null;index"`
	Status     string         `gorm:"not null"`
	IssueDate  time.Time      `gorm:"not null"`
	ExpiryDate time.Time      `gorm:"not null"`
	Items      []quoteItemRow `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	Notes      string
	Subtotal   float64
	TaxRate    float64
	TaxAmount  float64
	Total      float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (quoteRow) TableName() string { return "quotes" }

type quoteItemRow struct {
	ID          uint   `gorm:"primaryKey"`
	QuoteID     string `gorm:"not null;index"`
	Position    int    `gorm:"not null"`
	Description string `gorm:"not null"`
	Quantity    float64
	UnitPrice   float64
	Total       float64
}

func (quoteItemRow) TableName() string { return "quote_items" }

type counterRow struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

func (counterRow) TableName() string { return "counters" }

type quotePaymentRow struct {
	ID                 string `gorm:"primaryKey"`
	QuoteID            string `gorm:"not null;index"`
	Amount             float64
	Date               time.Time `gorm:"not null"`
	Status             string    `gorm:"not null"`
	ProviderPayloadRaw string
}

func (quotePaymentRow) TableName() string { return "quote_payments" }

// OpenSessionIndex keeps at most one open session per (employee, order).
const OpenSessionIndex = "ux_work_sessions_open"

// MigrateGorm creates or updates the relational schema.
func MigrateGorm(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employeeRow{},
		&workOrderRow{},
		&workSessionRow{},
		&quoteRow{},
		&quoteItemRow{},
		&counterRow{},
		&quotePaymentRow{},
	); err != nil {
		return err
	}
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS " + OpenSessionIndex +
		" ON work_sessions(employee_id, order_id) WHERE end_time IS NULL").Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
