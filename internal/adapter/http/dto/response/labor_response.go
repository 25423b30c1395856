package response

import (
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
)

// CostSummaryResponse is a priced duration, rounded to cents.
type CostSummaryResponse struct {
	DurationMinutes int     `json:"duration_minutes"`
	DurationHours   float64 `json:"duration_hours"`
	HourlyRate      float64 `json:"hourly_rate"`
	TotalCost       float64 `json:"total_cost"`
}

func FromCostSummary(s entities.CostSummary) CostSummaryResponse {
	return CostSummaryResponse{
		DurationMinutes: s.DurationMinutes,
		DurationHours:   labor.Round2(s.DurationHours),
		HourlyRate:      labor.Round2(s.HourlyRate),
		TotalCost:       labor.Round2(s.TotalCost),
	}
}

type WorkSessionResponse struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"order_id"`
	EmployeeID      string     `json:"employee_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Open            bool       `json:"open"`
}

func FromWorkSession(s entities.WorkSession) WorkSessionResponse {
	return WorkSessionResponse{
		ID:              s.ID,
		OrderID:         s.OrderID,
		EmployeeID:      s.EmployeeID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Open:            s.IsOpen(),
	}
}

// PricedSessionResponse is a session with its cost, used by stop and active.
type PricedSessionResponse struct {
	Session WorkSessionResponse `json:"session"`
	Cost    CostSummaryResponse `json:"cost"`
}

func FromPricedSession(s entities.WorkSession, summary entities.CostSummary) PricedSessionResponse {
	return PricedSessionResponse{Session: FromWorkSession(s), Cost: FromCostSummary(summary)}
}
