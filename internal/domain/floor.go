package domain

import (
	"time"
)

// Floor represents a mall floor. Level orders floors vertically; Code is the
// short label shown on maps and directories (e.g. "B1", "GF").
type Floor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Level       int       `json:"level"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
