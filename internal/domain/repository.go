package domain

import (
	"context"

	"github.com/google/uuid"
)

// Transactor runs fn inside one database transaction. Repository calls made with
// the context handed to fn join that transaction; a non-nil error from fn rolls it back
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// IngredientRepository defines the interface for ingredient persistence operations
type IngredientRepository interface {
	// GetByID retrieves an ingredient by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Ingredient, error)

	// Create creates a new ingredient
	// Returns ErrDuplicateName if the name is already taken
	Create(ctx context.Context, ingredient *Ingredient) error

	// Update overwrites the mutable fields of an existing ingredient
	Update(ctx context.Context, ingredient *Ingredient) error

	// Delete removes an ingredient
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves all ingredients ordered by name
	List(ctx context.Context) ([]*Ingredient, error)

	// ListByIDs retrieves the ingredients with the given IDs (missing IDs are skipped)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Ingredient, error)
}

// ExpenseRepository defines the interface for operational expense persistence operations
type ExpenseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	Create(ctx context.Context, expense *Expense) error
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Expense, error)
}

// TaxRepository defines the interface for tax and tax payment persistence operations
type TaxRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Tax, error)
	Create(ctx context.Context, tax *Tax) error
	List(ctx context.Context) ([]*Tax, error)

	// LockByID retrieves a tax and holds its row lock until the surrounding transaction ends
	LockByID(ctx context.Context, id uuid.UUID) (*Tax, error)

	// AddPayment appends a payment to the tax's payment history
	AddPayment(ctx context.Context, payment *TaxPayment) error

	// ListPayments retrieves every payment of a tax ordered by date
	ListPayments(ctx context.Context, taxID uuid.UUID) ([]*TaxPayment, error)

	// UpdateAverage persists the recomputed running average of a tax
	UpdateAverage(ctx context.Context, tax *Tax) error
}

// RecipeRepository defines the interface for recipe persistence operations
type RecipeRepository interface {
	// GetByID retrieves a recipe with its ingredient usages
	GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// Create creates a recipe and all of its usages in a single database transaction
	Create(ctx context.Context, recipe *Recipe) error

	// UpdatePrice persists TotalCost, FinalPrice and PricedAt of a recipe
	UpdatePrice(ctx context.Context, recipe *Recipe) error

	// List retrieves all recipes with their usages
	List(ctx context.Context) ([]*Recipe, error)

	// CountUsagesOfIngredient returns how many recipe usages reference the ingredient
	CountUsagesOfIngredient(ctx context.Context, ingredientID uuid.UUID) (int, error)
}

// IngredientHistoryRepository defines the interface for the append-only ingredient history log
type IngredientHistoryRepository interface {
	// Add appends a new history entry
	Add(ctx context.Context, entry *IngredientHistoryEntry) error

	// ListByIngredient retrieves every entry recorded for an ingredient (order unspecified)
	ListByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*IngredientHistoryEntry, error)
}
