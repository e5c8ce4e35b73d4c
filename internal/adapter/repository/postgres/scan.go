package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// parseDecimal parses a NUMERIC column read as text
func parseDecimal(value, column string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return d, nil
}

// pqCode returns the SQLSTATE of a driver error, or "" for anything else
func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// translateWriteError maps constraint violations to domain errors.
// A foreign key violation on insert means the referenced row does not exist.
func translateWriteError(err error, action string) error {
	switch pqCode(err) {
	case pqUniqueViolation:
		return fmt.Errorf("%s: %w", action, domain.ErrDuplicateName)
	case pqForeignKeyViolation:
		return fmt.Errorf("%s: %w", action, domain.ErrNotFound)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
