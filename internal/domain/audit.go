package domain

import "time"

// Audit holds the lifecycle timestamps and flags shared by every catalog entity.
// The store maintains these fields; callers never set them.
type Audit struct {
	CreatedDate time.Time  `json:"createdDate" db:"created_date"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty" db:"updated_date"`
	DeletedDate *time.Time `json:"deletedDate,omitempty" db:"deleted_date"`
	Active      bool       `json:"active" db:"is_active"`
}
