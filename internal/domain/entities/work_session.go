package entities

import "time"

// WorkSession is one continuous period an employee spent on one work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (employee_id-index): employee_id, start_time
//
// A session is open while EndTime is nil. At most one open session may exist
// for a given (employee, order) pair; the repositories enforce it at write time.
type WorkSession struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"order_id"`
	EmployeeID      string     `json:"employee_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (s WorkSession) IsOpen() bool {
	return s.EndTime == nil
}

// CostSummary prices a session duration with an employee hourly rate.
// Values are kept unrounded; rounding happens in response payloads.
type CostSummary struct {
	DurationMinutes int     `json:"duration_minutes"`
	DurationHours   float64 `json:"duration_hours"`
	HourlyRate      float64 `json:"hourly_rate"`
	TotalCost       float64 `json:"total_cost"`
}
