package models

import (
	"time"

	"github.com/google/uuid"
)

type ReturnCondition string

const (
	ConditionGood    ReturnCondition = "Good"
	ConditionDamaged ReturnCondition = "Damaged"
	ConditionFaulty  ReturnCondition = "Faulty"
)

func IsValidReturnCondition(c string) bool {
	switch ReturnCondition(c) {
	case ConditionGood, ConditionDamaged, ConditionFaulty:
		return true
	}
	return false
}

// ReturnRecord is the immutable log entry for one return event. Rows are
// inserted once and never updated.
type ReturnRecord struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	AssetID          uuid.UUID       `json:"asset_id" db:"asset_id"`
	EmployeeID       uuid.UUID       `json:"employee_id" db:"employee_id"`
	ReturnDate       time.Time       `json:"return_date" db:"return_date"`
	Condition        ReturnCondition `json:"condition" db:"condition"`
	Remarks          string          `json:"remarks" db:"remarks"`
	Photo            *string         `json:"photo,omitempty" db:"photo"`
	WitnessID        uuid.UUID       `json:"witness_id" db:"witness_id"`
	WitnessName      string          `json:"witness_name" db:"witness_name"`
	WitnessSignature *string         `json:"witness_signature,omitempty" db:"witness_signature"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}
