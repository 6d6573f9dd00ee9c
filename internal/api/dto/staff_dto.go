package dto

import "time"

// CreateRSORequest payload.
type CreateRSORequest struct {
	Name         string  `json:"name"`
	EmployeeCode *string `json:"employeeCode"`
	Phone        *string `json:"phone"`
}

// UpdateRSORequest payload. This is a full replace; IsActive defaults to
// true when omitted.
type UpdateRSORequest struct {
	Name         string  `json:"name"`
	EmployeeCode *string `json:"employeeCode"`
	Phone        *string `json:"phone"`
	IsActive     *bool   `json:"isActive"`
}

// RSOResponse envelope item.
type RSOResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	EmployeeCode *string   `json:"employeeCode"`
	Phone        *string   `json:"phone"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
