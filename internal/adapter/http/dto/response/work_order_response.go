package response

import (
	"time"

	"carrozzeria/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Description  string    `json:"description"`
	ClientName   string    `json:"client_name"`
	VehiclePlate string    `json:"vehicle_plate"`
	VehicleMake  string    `json:"vehicle_make"`
	VehicleModel string    `json:"vehicle_model"`
	VehicleLabel string    `json:"vehicle_label"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		Description:  o.Description,
		ClientName:   o.ClientName,
		VehiclePlate: o.VehiclePlate,
		VehicleMake:  o.VehicleMake,
		VehicleModel: o.VehicleModel,
		VehicleLabel: o.VehicleLabel(),
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func FromWorkOrders(list []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromWorkOrder(o))
	}
	return out
}
