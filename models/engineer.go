package models

import (
	"time"

	"github.com/google/uuid"
)

// ITEngineer is authorized personnel who may witness a handover or return.
// Only active engineers are offered for new transactions; references on
// historical records stay valid after deactivation.
type ITEngineer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
