package domain

import "time"

// Company is a directory entry that offers services. OwnerID, when set,
// referenced a live user at the time it was written.
type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     *int64    `json:"ownerId"`
	IsDeleted   bool      `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
