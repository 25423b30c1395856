package entities

import (
	"strings"
	"time"
)

// WorkOrderStatus is the repair lifecycle of an order.
//
// The status is set by callers; starting or stopping timers does not move it.
type WorkOrderStatus string

const (
	WorkOrderStatusWaiting    WorkOrderStatus = "waiting"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusDelivered  WorkOrderStatus = "delivered"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusWaiting, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusDelivered:
		return true
	}
	return false
}

type WorkOrder struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Description  string          `json:"description"`
	ClientName   string          `json:"client_name"`
	VehiclePlate string          `json:"vehicle_plate"`
	VehicleMake  string          `json:"vehicle_make"`
	VehicleModel string          `json:"vehicle_model"`
	Status       WorkOrderStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// VehicleLabel renders "Make Model (PLATE)", skipping missing parts.
func (o WorkOrder) VehicleLabel() string {
	label := strings.TrimSpace(o.VehicleMake + " " + o.VehicleModel)
	if o.VehiclePlate == "" {
		return label
	}
	if label == "" {
		return o.VehiclePlate
	}
	return label + " (" + o.VehiclePlate + ")"
}
