package usecase

import "errors"

var (
	ErrInvalidEmployeeID      = errors.New("invalid employee_id")
	ErrInvalidOrderID         = errors.New("invalid order_id")
	ErrInvalidQuoteID         = errors.New("invalid quote_id")
	ErrInvalidEmployee        = errors.New("invalid employee data")
	ErrInvalidWorkOrder       = errors.New("invalid work order data")
	ErrInvalidWorkOrderStatus = errors.New("invalid work order status")
	ErrInvalidPeriod          = errors.New("invalid period")

	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrQuoteNotFound     = errors.New("quote not found")

	ErrEmployeeInactive       = errors.New("employee is not active")
	ErrOpenSessionExists      = errors.New("an open session already exists for this employee and order")
	ErrOpenSessionNotFound    = errors.New("no open session for this employee and order")
	ErrSessionAlreadyClosed   = errors.New("session already closed")
	ErrInvalidQuoteTransition = errors.New("quote status transition not allowed")
)
