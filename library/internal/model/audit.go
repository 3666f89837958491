package model

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionLend   Action = "LEND"
	ActionReturn Action = "RETURN"
	ActionLogin  Action = "LOGIN"
	ActionOther  Action = "OTHER"
)

const (
	EntityBook    = "Book"
	EntityReader  = "Reader"
	EntityLending = "Lending"
)

type AuditLog struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Action      Action    `json:"action" db:"action"`
	PerformedBy string    `json:"performedBy" db:"performed_by"`
	EntityType  string    `json:"entityType" db:"entity_type"`
	EntityID    string    `json:"entityId" db:"entity_id"`
	Details     string    `json:"details" db:"details"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}
