package request

import (
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase"
)

type CreateWorkOrderRequest struct {
	Description  string `json:"description" binding:"required"`
	ClientName   string `json:"client_name"`
	VehiclePlate string `json:"vehicle_plate"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		Description:  r.Description,
		ClientName:   r.ClientName,
		VehiclePlate: r.VehiclePlate,
		VehicleMake:  r.VehicleMake,
		VehicleModel: r.VehicleModel,
	}
}

type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateWorkOrderStatusRequest) ResolveStatus() entities.WorkOrderStatus {
	return entities.WorkOrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
