package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a listed item owned by a user account.
// Products start unapproved and become publicly visible only after an
// admin flips IsApproved.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // minor units
	Quantity    int       `json:"quantity"`
	OwnerID     uuid.UUID `json:"owner_id"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
