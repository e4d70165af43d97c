package domain

import "time"

// Service is an offering linked to one or more companies. CompanyIDs only
// lists companies that are not deleted.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CompanyIDs  []int64   `json:"companyIds"`
	IsDeleted   bool      `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
