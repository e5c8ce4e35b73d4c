package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

const ingredientColumns = `id, name, purchase_cost, purchase_unit, purchase_quantity, waste_rate, category, created_at, updated_at`

// ingredientRepository implements domain.IngredientRepository
type ingredientRepository struct {
	db *DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *DB) domain.IngredientRepository {
	return &ingredientRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIngredient(row rowScanner) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	var costStr, quantityStr, wasteStr, category string

	if err := row.Scan(
		&ingredient.ID,
		&ingredient.Name,
		&costStr,
		&ingredient.PurchaseUnit,
		&quantityStr,
		&wasteStr,
		&category,
		&ingredient.CreatedAt,
		&ingredient.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ingredient.Category = domain.IngredientCategory(category)

	var err error
	if ingredient.PurchaseCost, err = parseDecimal(costStr, "purchase_cost"); err != nil {
		return nil, err
	}
	if ingredient.PurchaseQuantity, err = parseDecimal(quantityStr, "purchase_quantity"); err != nil {
		return nil, err
	}
	if ingredient.WasteRate, err = parseDecimal(wasteStr, "waste_rate"); err != nil {
		return nil, err
	}

	return &ingredient, nil
}

// GetByID retrieves an ingredient by its ID
func (r *ingredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`

	ingredient, err := scanIngredient(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ingredient %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ingredient by ID: %w", err)
	}

	return ingredient, nil
}

// Create creates a new ingredient
func (r *ingredientRepository) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		ingredient.ID,
		ingredient.Name,
		ingredient.PurchaseCost.String(),
		ingredient.PurchaseUnit,
		ingredient.PurchaseQuantity.String(),
		ingredient.WasteRate.String(),
		string(ingredient.Category),
		ingredient.CreatedAt,
		ingredient.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "create ingredient")
	}

	return nil
}

// Update overwrites the mutable fields of an ingredient
func (r *ingredientRepository) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, purchase_cost = $3, purchase_unit = $4, purchase_quantity = $5,
		    waste_rate = $6, category = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.conn(ctx).ExecContext(ctx, query,
		ingredient.ID,
		ingredient.Name,
		ingredient.PurchaseCost.String(),
		ingredient.PurchaseUnit,
		ingredient.PurchaseQuantity.String(),
		ingredient.WasteRate.String(),
		string(ingredient.Category),
		ingredient.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "update ingredient")
	}

	return expectOneRow(result, "ingredient", ingredient.ID)
}

// Delete removes an ingredient
func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.conn(ctx).ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return fmt.Errorf("delete ingredient %s: %w", id, domain.ErrIngredientInUse)
		}
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}

	return expectOneRow(result, "ingredient", id)
}

// List retrieves all ingredients ordered by name
func (r *ingredientRepository) List(ctx context.Context) ([]*domain.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name`
	return r.query(ctx, query)
}

// ListByIDs retrieves the ingredients with the given IDs
func (r *ingredientRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Ingredient, error) {
	if len(ids) == 0 {
		return []*domain.Ingredient{}, nil
	}

	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = ANY($1::uuid[]) ORDER BY name`
	return r.query(ctx, query, pq.Array(uuidStrings(ids)))
}

func (r *ingredientRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Ingredient, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := make([]*domain.Ingredient, 0)
	for rows.Next() {
		ingredient, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}

	return ingredients, nil
}

// expectOneRow turns an UPDATE/DELETE that matched nothing into ErrNotFound
func expectOneRow(result sql.Result, entity string, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
