package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/recipecost-backend/internal/domain"
	"github.com/simaogato/recipecost-backend/internal/metrics"
	"github.com/simaogato/recipecost-backend/internal/usecase/pricing"
)

// UsageInput is one ingredient line of a recipe, quantity in base units (g, ml or unit)
type UsageInput struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
}

// CreateRecipeInput represents the input for creating a recipe
type CreateRecipeInput struct {
	Name            string
	Category        string
	PrepTimeMinutes decimal.Decimal
	ProfitMarginPct decimal.Decimal
	Usages          []UsageInput
}

// QuoteInput represents an ad-hoc pricing request that is never persisted
type QuoteInput struct {
	PrepTimeMinutes decimal.Decimal
	ProfitMarginPct decimal.Decimal
	Usages          []UsageInput
}

// PricedRecipe is a recipe together with the breakdown of its latest price
type PricedRecipe struct {
	Recipe    *domain.Recipe
	Breakdown pricing.Breakdown
}

// RepriceReport summarizes a RepriceAll run
type RepriceReport struct {
	Priced int
	Failed int
}

// RecipeService handles recipe creation and pricing
type RecipeService struct {
	IngredientRepo domain.IngredientRepository
	ExpenseRepo    domain.ExpenseRepository
	TaxRepo        domain.TaxRepository
	RecipeRepo     domain.RecipeRepository
	Metrics        *metrics.Metrics

	logger *zap.Logger
	now    func() time.Time
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(
	ingredientRepo domain.IngredientRepository,
	expenseRepo domain.ExpenseRepository,
	taxRepo domain.TaxRepository,
	recipeRepo domain.RecipeRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		IngredientRepo: ingredientRepo,
		ExpenseRepo:    expenseRepo,
		TaxRepo:        taxRepo,
		RecipeRepo:     recipeRepo,
		Metrics:        m,
		logger:         logger,
		now:            time.Now,
	}
}

// operationalCosts holds the expenses and taxes shared by every recipe
type operationalCosts struct {
	expenses []*domain.Expense
	taxes    []*domain.Tax
}

func (s *RecipeService) loadOperationalCosts(ctx context.Context) (operationalCosts, error) {
	expenses, err := s.ExpenseRepo.List(ctx)
	if err != nil {
		return operationalCosts{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	taxes, err := s.TaxRepo.List(ctx)
	if err != nil {
		return operationalCosts{}, fmt.Errorf("failed to load taxes: %w", err)
	}
	return operationalCosts{expenses: expenses, taxes: taxes}, nil
}

// loadIngredients fetches the referenced ingredients and fails with ErrNotFound if any is missing
func (s *RecipeService) loadIngredients(ctx context.Context, usages []domain.RecipeIngredient) (map[uuid.UUID]*domain.Ingredient, error) {
	if len(usages) == 0 {
		return map[uuid.UUID]*domain.Ingredient{}, nil
	}

	ids := make([]uuid.UUID, 0, len(usages))
	for _, u := range usages {
		ids = append(ids, u.IngredientID)
	}

	ingredients, err := s.IngredientRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	byID := pricing.IndexIngredients(ingredients)
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: ingredient %s", domain.ErrNotFound, id)
		}
	}
	return byID, nil
}

func breakdownFor(recipe *domain.Recipe, byID map[uuid.UUID]*domain.Ingredient, costs operationalCosts) pricing.Breakdown {
	return pricing.PriceRecipe(pricing.RecipeInput{
		Usages:          pricing.ResolveUsages(recipe.Ingredients, byID),
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		Expenses:        costs.expenses,
		Taxes:           costs.taxes,
		ProfitMarginPct: recipe.ProfitMarginPct,
	})
}

func toUsages(recipeID uuid.UUID, inputs []UsageInput) []domain.RecipeIngredient {
	usages := make([]domain.RecipeIngredient, 0, len(inputs))
	for _, in := range inputs {
		usages = append(usages, domain.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: in.IngredientID,
			Quantity:     in.Quantity,
		})
	}
	return usages
}

// Create creates a recipe and prices it once
// Logic:
//  1. Build and validate the recipe with its usages
//  2. Verify every usage references an existing ingredient
//  3. Price against current ingredients, expenses and taxes
//  4. Save using RecipeRepo.Create (recipe, usages and price in one transaction)
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput) (*PricedRecipe, error) {
	now := s.now().UTC()

	// 1. Build and validate
	recipe := &domain.Recipe{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(input.Name),
		Category:        strings.TrimSpace(input.Category),
		PrepTimeMinutes: input.PrepTimeMinutes,
		ProfitMarginPct: input.ProfitMarginPct,
		CreatedAt:       now,
	}
	recipe.Ingredients = toUsages(recipe.ID, input.Usages)

	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	// 2. Resolve ingredients
	byID, err := s.loadIngredients(ctx, recipe.Ingredients)
	if err != nil {
		return nil, err
	}

	// 3. Price
	costs, err := s.loadOperationalCosts(ctx)
	if err != nil {
		return nil, err
	}
	breakdown := breakdownFor(recipe, byID, costs)
	recipe.TotalCost = breakdown.TotalCost
	recipe.FinalPrice = breakdown.FinalPrice
	recipe.PricedAt = &now

	// 4. Save
	if err := s.RecipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	s.Metrics.RecipePriced()
	s.logger.Info("recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("name", recipe.Name),
		zap.Int("usages", len(recipe.Ingredients)),
		zap.String("final_price", pricing.RoundCurrency(recipe.FinalPrice).String()),
	)

	return &PricedRecipe{Recipe: recipe, Breakdown: breakdown}, nil
}

// Price reprices a stored recipe from the current ingredient, expense and tax records
// and persists TotalCost, FinalPrice and PricedAt
func (s *RecipeService) Price(ctx context.Context, recipeID uuid.UUID) (*PricedRecipe, error) {
	recipe, err := s.RecipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	byID, err := s.loadIngredients(ctx, recipe.Ingredients)
	if err != nil {
		return nil, err
	}

	costs, err := s.loadOperationalCosts(ctx)
	if err != nil {
		return nil, err
	}

	return s.persistPrice(ctx, recipe, byID, costs)
}

func (s *RecipeService) persistPrice(
	ctx context.Context,
	recipe *domain.Recipe,
	byID map[uuid.UUID]*domain.Ingredient,
	costs operationalCosts,
) (*PricedRecipe, error) {
	breakdown := breakdownFor(recipe, byID, costs)

	now := s.now().UTC()
	recipe.TotalCost = breakdown.TotalCost
	recipe.FinalPrice = breakdown.FinalPrice
	recipe.PricedAt = &now

	if err := s.RecipeRepo.UpdatePrice(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to persist price of recipe %s: %w", recipe.ID, err)
	}

	s.Metrics.RecipePriced()
	return &PricedRecipe{Recipe: recipe, Breakdown: breakdown}, nil
}

// Quote prices ad-hoc usages against the current records without persisting anything
func (s *RecipeService) Quote(ctx context.Context, input QuoteInput) (pricing.Breakdown, error) {
	draft := &domain.Recipe{
		Name:            "quote",
		PrepTimeMinutes: input.PrepTimeMinutes,
		ProfitMarginPct: input.ProfitMarginPct,
		Ingredients:     toUsages(uuid.Nil, input.Usages),
	}
	if err := draft.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}

	byID, err := s.loadIngredients(ctx, draft.Ingredients)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	costs, err := s.loadOperationalCosts(ctx)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return breakdownFor(draft, byID, costs), nil
}

// RepriceAll reprices every stored recipe.
// Ingredients, expenses and taxes are loaded once per run. A recipe that fails to persist is
// logged and counted; the run continues with the next recipe.
func (s *RecipeService) RepriceAll(ctx context.Context) (RepriceReport, error) {
	recipes, err := s.RecipeRepo.List(ctx)
	if err != nil {
		return RepriceReport{}, fmt.Errorf("failed to list recipes: %w", err)
	}

	ingredients, err := s.IngredientRepo.List(ctx)
	if err != nil {
		return RepriceReport{}, fmt.Errorf("failed to load ingredients: %w", err)
	}
	byID := pricing.IndexIngredients(ingredients)

	costs, err := s.loadOperationalCosts(ctx)
	if err != nil {
		return RepriceReport{}, err
	}

	var report RepriceReport
	for _, recipe := range recipes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if _, err := s.persistPrice(ctx, recipe, byID, costs); err != nil {
			report.Failed++
			s.Metrics.RepricingFailed()
			s.logger.Warn("failed to reprice recipe",
				zap.String("recipe_id", recipe.ID.String()),
				zap.Error(err),
			)
			continue
		}
		report.Priced++
	}

	result := "ok"
	if report.Failed > 0 {
		result = "partial"
	}
	s.Metrics.RepricingFinished(result)
	s.logger.Info("repricing finished",
		zap.Int("priced", report.Priced),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}
