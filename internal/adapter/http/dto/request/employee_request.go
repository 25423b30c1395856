package request

import (
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase"
)

type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourly_rate" binding:"gte=0"`
}

func (r CreateEmployeeRequest) ToInput() usecase.CreateEmployeeInput {
	return usecase.CreateEmployeeInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Role:       entities.EmployeeRole(strings.ToLower(strings.TrimSpace(r.Role))),
		HourlyRate: r.HourlyRate,
	}
}

// UpdateEmployeeRequest is a partial update: absent fields stay as stored.
type UpdateEmployeeRequest struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Role       *string  `json:"role"`
	HourlyRate *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	Active     *bool    `json:"active"`
}

func (r UpdateEmployeeRequest) ToInput() usecase.UpdateEmployeeInput {
	in := usecase.UpdateEmployeeInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		HourlyRate: r.HourlyRate,
		Active:     r.Active,
	}
	if r.Role != nil {
		role := entities.EmployeeRole(strings.ToLower(strings.TrimSpace(*r.Role)))
		in.Role = &role
	}
	return in
}
