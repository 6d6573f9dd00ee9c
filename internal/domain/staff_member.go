package domain

import "time"

// StaffMember models a retail sales officer (RSO) who can be assigned
// interactions. Deletion is always a soft delete: Active flips to false and
// the row stays behind so interaction references keep resolving.
type StaffMember struct {
	ID           int64
	Name         string
	EmployeeCode *string
	Phone        *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
