package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/recipecost-backend/internal/domain"
	"github.com/simaogato/recipecost-backend/internal/usecase/history"
	"github.com/simaogato/recipecost-backend/internal/usecase/pricing"
)

// RecipeSummary is the pricing state of one recipe in the overview
type RecipeSummary struct {
	Recipe    *domain.Recipe
	Breakdown pricing.Breakdown
	// Stale is true when the stored final price, rounded to cents, differs from the current one
	Stale bool
}

// Overview represents the pricing state of the whole menu
type Overview struct {
	OperationalRatePerMinute decimal.Decimal
	Recipes                  []RecipeSummary
	StaleCount               int
}

// IngredientChart is the cost history of one ingredient ready to be plotted
type IngredientChart struct {
	Ingredient *domain.Ingredient
	Series     []*domain.IngredientHistoryEntry
	Axis       history.AxisDomain
}

// DashboardService handles read-only pricing views
type DashboardService struct {
	IngredientRepo domain.IngredientRepository
	ExpenseRepo    domain.ExpenseRepository
	TaxRepo        domain.TaxRepository
	RecipeRepo     domain.RecipeRepository
	Tracker        *history.Tracker
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	ingredientRepo domain.IngredientRepository,
	expenseRepo domain.ExpenseRepository,
	taxRepo domain.TaxRepository,
	recipeRepo domain.RecipeRepository,
	tracker *history.Tracker,
) *DashboardService {
	return &DashboardService{
		IngredientRepo: ingredientRepo,
		ExpenseRepo:    expenseRepo,
		TaxRepo:        taxRepo,
		RecipeRepo:     recipeRepo,
		Tracker:        tracker,
	}
}

// GetOverview prices every recipe against the current records without persisting
// Logic:
//  1. Load all ingredients, expenses, taxes and recipes
//  2. Compute the shared operational rate once
//  3. Price every recipe and compare with its stored final price (rounded to cents)
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	// 1. Load
	ingredients, err := s.IngredientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	expenses, err := s.ExpenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	taxes, err := s.TaxRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}

	recipes, err := s.RecipeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	// 2. Shared rate
	overview := &Overview{
		OperationalRatePerMinute: pricing.OperationalRatePerMinute(expenses, taxes),
		Recipes:                  make([]RecipeSummary, 0, len(recipes)),
	}

	// 3. Price and compare
	byID := pricing.IndexIngredients(ingredients)
	for _, recipe := range recipes {
		breakdown := pricing.PriceRecipe(pricing.RecipeInput{
			Usages:          pricing.ResolveUsages(recipe.Ingredients, byID),
			PrepTimeMinutes: recipe.PrepTimeMinutes,
			Expenses:        expenses,
			Taxes:           taxes,
			ProfitMarginPct: recipe.ProfitMarginPct,
		})

		stale := recipe.PricedAt == nil ||
			!pricing.RoundCurrency(recipe.FinalPrice).Equal(pricing.RoundCurrency(breakdown.FinalPrice))
		if stale {
			overview.StaleCount++
		}

		overview.Recipes = append(overview.Recipes, RecipeSummary{
			Recipe:    recipe,
			Breakdown: breakdown,
			Stale:     stale,
		})
	}

	return overview, nil
}

// GetIngredientChart returns the ordered history of an ingredient and its y-axis domain
func (s *DashboardService) GetIngredientChart(ctx context.Context, ingredientID uuid.UUID) (*IngredientChart, error) {
	ingredient, err := s.IngredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	series, err := s.Tracker.SeriesFor(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	return &IngredientChart{
		Ingredient: ingredient,
		Series:     series,
		Axis:       history.ComputeAxisDomain(series),
	}, nil
}
