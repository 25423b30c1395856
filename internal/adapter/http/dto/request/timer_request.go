package request

import "strings"

// TimerRequest starts or stops the timer of one employee on one work order.
// employee_id may be omitted by employees acting on their own behalf.
type TimerRequest struct {
	EmployeeID string `json:"employee_id"`
	OrderID    string `json:"order_id" binding:"required"`
}

// ResolveEmployeeID falls back to the caller's own id when the body has none.
func (r TimerRequest) ResolveEmployeeID(self string) string {
	if v := strings.TrimSpace(r.EmployeeID); v != "" {
		return v
	}
	return strings.TrimSpace(self)
}
