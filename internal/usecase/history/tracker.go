package history

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

// Tracker maintains the append-only cost/waste history of ingredients
type Tracker struct {
	HistoryRepo domain.IngredientHistoryRepository
	logger      *zap.Logger
}

// NewTracker creates a new Tracker instance
func NewTracker(historyRepo domain.IngredientHistoryRepository, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		HistoryRepo: historyRepo,
		logger:      logger,
	}
}

// RecordSnapshot appends one history entry for an ingredient.
// Existing entries are never touched.
func (t *Tracker) RecordSnapshot(
	ctx context.Context,
	ingredientID uuid.UUID,
	costPerUnit decimal.Decimal,
	wasteRate decimal.Decimal,
	recordedAt time.Time,
) (*domain.IngredientHistoryEntry, error) {
	if ingredientID == uuid.Nil {
		return nil, fmt.Errorf("%w: history entry must reference an ingredient", domain.ErrInvalidInput)
	}

	entry := &domain.IngredientHistoryEntry{
		ID:           uuid.New(),
		IngredientID: ingredientID,
		CostPerUnit:  costPerUnit,
		WasteRate:    wasteRate,
		RecordedAt:   recordedAt,
	}

	if err := t.HistoryRepo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record ingredient snapshot: %w", err)
	}

	t.logger.Debug("ingredient snapshot recorded",
		zap.String("ingredient_id", ingredientID.String()),
		zap.String("cost_per_unit", costPerUnit.String()),
		zap.String("waste_rate", wasteRate.String()),
	)

	return entry, nil
}

// SeriesFor returns the history of an ingredient ordered by timestamp
func (t *Tracker) SeriesFor(ctx context.Context, ingredientID uuid.UUID) ([]*domain.IngredientHistoryEntry, error) {
	entries, err := t.HistoryRepo.ListByIngredient(ctx, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredient history: %w", err)
	}

	return SortSeries(entries), nil
}

// SortSeries returns a copy of entries sorted ascending by RecordedAt.
// Entries without a timestamp (zero time) come first. Equal timestamps are ordered by ID
// so the result never depends on insertion order.
func SortSeries(entries []*domain.IngredientHistoryEntry) []*domain.IngredientHistoryEntry {
	sorted := make([]*domain.IngredientHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entry != nil {
			sorted = append(sorted, entry)
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.Before(b.RecordedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})

	return sorted
}
