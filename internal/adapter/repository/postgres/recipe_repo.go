package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

const recipeColumns = `id, name, category, prep_time_minutes, profit_margin_pct, total_cost, final_price, priced_at, created_at`

// recipeRepository implements domain.RecipeRepository
type recipeRepository struct {
	db *DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *DB) domain.RecipeRepository {
	return &recipeRepository{db: db}
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var recipe domain.Recipe
	var prepStr, marginStr, totalStr, finalStr string
	var pricedAt sql.NullTime

	if err := row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Category,
		&prepStr,
		&marginStr,
		&totalStr,
		&finalStr,
		&pricedAt,
		&recipe.CreatedAt,
	); err != nil {
		return nil, err
	}

	// Parse priced_at (nullable)
	if pricedAt.Valid {
		t := pricedAt.Time
		recipe.PricedAt = &t
	}

	var err error
	if recipe.PrepTimeMinutes, err = parseDecimal(prepStr, "prep_time_minutes"); err != nil {
		return nil, err
	}
	if recipe.ProfitMarginPct, err = parseDecimal(marginStr, "profit_margin_pct"); err != nil {
		return nil, err
	}
	if recipe.TotalCost, err = parseDecimal(totalStr, "total_cost"); err != nil {
		return nil, err
	}
	if recipe.FinalPrice, err = parseDecimal(finalStr, "final_price"); err != nil {
		return nil, err
	}

	return &recipe, nil
}

// GetByID retrieves a recipe with its usages
func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	recipe, err := scanRecipe(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	usages, err := r.listUsages(ctx, `WHERE recipe_id = $1`, id)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = usages[recipe.ID]

	return recipe, nil
}

// Create creates a recipe and all of its usages in a single database transaction
func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	return r.db.WithinTx(ctx, func(ctx context.Context) error {
		dbTx := r.db.conn(ctx)

		// Insert the recipe header
		insertRecipeQuery := `
			INSERT INTO recipes (` + recipeColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		var pricedAt any
		if recipe.PricedAt != nil {
			pricedAt = *recipe.PricedAt
		}

		_, err := dbTx.ExecContext(ctx, insertRecipeQuery,
			recipe.ID,
			recipe.Name,
			recipe.Category,
			recipe.PrepTimeMinutes.String(),
			recipe.ProfitMarginPct.String(),
			recipe.TotalCost.String(),
			recipe.FinalPrice.String(),
			pricedAt,
			recipe.CreatedAt,
		)
		if err != nil {
			return translateWriteError(err, "insert recipe")
		}

		// Insert all usages
		insertUsageQuery := `
			INSERT INTO recipe_ingredients (id, recipe_id, ingredient_id, quantity)
			VALUES ($1, $2, $3, $4)
		`

		for _, usage := range recipe.Ingredients {
			_, err = dbTx.ExecContext(ctx, insertUsageQuery,
				usage.ID,
				recipe.ID,
				usage.IngredientID,
				usage.Quantity.String(),
			)
			if err != nil {
				return translateWriteError(err, "insert recipe usage")
			}
		}

		return nil
	})
}

// UpdatePrice persists the computed price of a recipe
func (r *recipeRepository) UpdatePrice(ctx context.Context, recipe *domain.Recipe) error {
	query := `
		UPDATE recipes
		SET total_cost = $2, final_price = $3, priced_at = $4
		WHERE id = $1
	`

	var pricedAt any
	if recipe.PricedAt != nil {
		pricedAt = *recipe.PricedAt
	}

	result, err := r.db.conn(ctx).ExecContext(ctx, query,
		recipe.ID,
		recipe.TotalCost.String(),
		recipe.FinalPrice.String(),
		pricedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe price: %w", err)
	}

	return expectOneRow(result, "recipe", recipe.ID)
}

// List retrieves all recipes with their usages ordered by name
func (r *recipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]*domain.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	usages, err := r.listUsages(ctx, ``)
	if err != nil {
		return nil, err
	}
	for _, recipe := range recipes {
		recipe.Ingredients = usages[recipe.ID]
	}

	return recipes, nil
}

// CountUsagesOfIngredient returns how many recipe usages reference the ingredient
func (r *recipeRepository) CountUsagesOfIngredient(ctx context.Context, ingredientID uuid.UUID) (int, error) {
	var count int
	err := r.db.conn(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recipe_ingredients WHERE ingredient_id = $1`,
		ingredientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ingredient usages: %w", err)
	}

	return count, nil
}

// listUsages loads usages grouped by recipe ID; where is an optional WHERE clause
func (r *recipeRepository) listUsages(ctx context.Context, where string, args ...any) (map[uuid.UUID][]domain.RecipeIngredient, error) {
	query := `SELECT id, recipe_id, ingredient_id, quantity FROM recipe_ingredients ` + where + ` ORDER BY recipe_id, id`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe usages: %w", err)
	}
	defer rows.Close()

	usages := make(map[uuid.UUID][]domain.RecipeIngredient)
	for rows.Next() {
		var usage domain.RecipeIngredient
		var quantityStr string

		if err := rows.Scan(&usage.ID, &usage.RecipeID, &usage.IngredientID, &quantityStr); err != nil {
			return nil, fmt.Errorf("failed to scan recipe usage: %w", err)
		}
		if usage.Quantity, err = parseDecimal(quantityStr, "quantity"); err != nil {
			return nil, err
		}
		usages[usage.RecipeID] = append(usages[usage.RecipeID], usage)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe usages: %w", err)
	}

	return usages, nil
}
