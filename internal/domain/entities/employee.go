package entities

import (
	"strings"
	"time"
)

type EmployeeRole string

const (
	EmployeeRoleMechanic   EmployeeRole = "mechanic"
	EmployeeRoleBodyworker EmployeeRole = "bodyworker"
	EmployeeRolePainter    EmployeeRole = "painter"
	EmployeeRoleManager    EmployeeRole = "manager"
)

// Employee is a shop worker whose hourly cost prices labor sessions.
// Inactive employees keep their history but cannot open new sessions.
type Employee struct {
	ID         string       `json:"id"`
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	Role       EmployeeRole `json:"role"`
	HourlyRate float64      `json:"hourly_rate"`
	Active     bool         `json:"active"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
