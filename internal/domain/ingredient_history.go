package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientHistoryEntry is an immutable snapshot of an ingredient's cost and waste rate.
// Entries are only ever appended; nothing updates or deletes them.
type IngredientHistoryEntry struct {
	ID           uuid.UUID
	IngredientID uuid.UUID
	CostPerUnit  decimal.Decimal
	WasteRate    decimal.Decimal
	RecordedAt   time.Time // Zero when unknown; such entries sort first
}
