package domain

import (
	"time"
)

// Shop status constants.
const (
	ShopStatusActive   = "active"
	ShopStatusInactive = "inactive"
	ShopStatusPending  = "pending"
)

// Field length limits shared by the validation rules and the schema.
const (
	ShopNameMinLen    = 3
	ShopNameMaxLen    = 100
	DescriptionMaxLen = 1000
	PasswordMinLen    = 8
	PasswordMaxLen    = 128
)

// Shop represents a mall shop listing. Category and Floor hold the referenced
// names rather than ids; renaming a category or floor does not rewrite shops.
type Shop struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Floor         string    `json:"floor"`
	ContactNumber string    `json:"contactNumber"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ValidShopStatuses returns the set of valid shop statuses.
func ValidShopStatuses() []string {
	return []string{
		ShopStatusActive,
		ShopStatusInactive,
		ShopStatusPending,
	}
}

// IsValidShopStatus checks whether the given status string is a valid shop status.
func IsValidShopStatus(status string) bool {
	for _, s := range ValidShopStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
