package ingredient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/recipecost-backend/internal/domain"
	"github.com/simaogato/recipecost-backend/internal/usecase/history"
)

// IngredientInput represents the editable fields of an ingredient
type IngredientInput struct {
	Name             string
	PurchaseCost     decimal.Decimal
	PurchaseUnit     string
	PurchaseQuantity decimal.Decimal // Optional: zero uses the unit default
	WasteRate        decimal.Decimal
	Category         domain.IngredientCategory
}

// IngredientService handles ingredient registration and maintenance
type IngredientService struct {
	IngredientRepo domain.IngredientRepository
	RecipeRepo     domain.RecipeRepository
	Tracker        *history.Tracker
	Tx             domain.Transactor

	logger *zap.Logger
	now    func() time.Time
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(
	ingredientRepo domain.IngredientRepository,
	recipeRepo domain.RecipeRepository,
	tracker *history.Tracker,
	tx domain.Transactor,
	logger *zap.Logger,
) *IngredientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngredientService{
		IngredientRepo: ingredientRepo,
		RecipeRepo:     recipeRepo,
		Tracker:        tracker,
		Tx:             tx,
		logger:         logger,
		now:            time.Now,
	}
}

// Register creates a new ingredient and records its first history snapshot
// Logic:
//  1. Build and validate the ingredient
//  2. In one transaction, save using IngredientRepo.Create and record the
//     initial cost/waste snapshot so the chart starts at registration
func (s *IngredientService) Register(ctx context.Context, input IngredientInput) (*domain.Ingredient, error) {
	now := s.now().UTC()

	// 1. Build and validate
	ingredient := &domain.Ingredient{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(input.Name),
		PurchaseCost:     input.PurchaseCost,
		PurchaseUnit:     domain.NormalizeUnit(input.PurchaseUnit),
		PurchaseQuantity: input.PurchaseQuantity,
		WasteRate:        input.WasteRate,
		Category:         input.Category,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := ingredient.Validate(); err != nil {
		return nil, err
	}

	// 2. Save with the initial snapshot
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.IngredientRepo.Create(ctx, ingredient); err != nil {
			return err
		}
		_, err := s.Tracker.RecordSnapshot(ctx, ingredient.ID, ingredient.CostPerPurchaseUnit(), ingredient.WasteRate, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ingredient registered",
		zap.String("ingredient_id", ingredient.ID.String()),
		zap.String("name", ingredient.Name),
	)

	return ingredient, nil
}

// Update overwrites an ingredient's editable fields
// Logic:
//  1. Fetch the current ingredient
//  2. Apply and validate the new values
//  3. Save using IngredientRepo.Update and, if cost, waste, unit or quantity
//     changed, append a history snapshot in the same transaction
func (s *IngredientService) Update(ctx context.Context, id uuid.UUID, input IngredientInput) (*domain.Ingredient, error) {
	// 1. Fetch
	current, err := s.IngredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Apply
	now := s.now().UTC()
	updated := *current
	updated.Name = strings.TrimSpace(input.Name)
	updated.PurchaseCost = input.PurchaseCost
	updated.PurchaseUnit = domain.NormalizeUnit(input.PurchaseUnit)
	updated.PurchaseQuantity = input.PurchaseQuantity
	updated.WasteRate = input.WasteRate
	updated.Category = input.Category
	updated.UpdatedAt = now

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	// 3. Save, historizing cost-affecting changes only
	costChanged := current.CostAffectingChange(&updated)
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.IngredientRepo.Update(ctx, &updated); err != nil {
			return err
		}
		if !costChanged {
			return nil
		}
		_, err := s.Tracker.RecordSnapshot(ctx, updated.ID, updated.CostPerPurchaseUnit(), updated.WasteRate, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	if costChanged {
		s.logger.Info("ingredient cost changed",
			zap.String("ingredient_id", updated.ID.String()),
			zap.String("old_cost", current.PurchaseCost.String()),
			zap.String("new_cost", updated.PurchaseCost.String()),
			zap.String("old_waste_rate", current.WasteRate.String()),
			zap.String("new_waste_rate", updated.WasteRate.String()),
		)
	}

	return &updated, nil
}

// Delete removes an ingredient that no recipe uses
func (s *IngredientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.IngredientRepo.GetByID(ctx, id); err != nil {
		return err
	}

	usages, err := s.RecipeRepo.CountUsagesOfIngredient(ctx, id)
	if err != nil {
		return err
	}
	if usages > 0 {
		return fmt.Errorf("%w: %d recipe usage(s) reference ingredient %s", domain.ErrIngredientInUse, usages, id)
	}

	if err := s.IngredientRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("ingredient deleted", zap.String("ingredient_id", id.String()))
	return nil
}

// Get retrieves a single ingredient
func (s *IngredientService) Get(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	return s.IngredientRepo.GetByID(ctx, id)
}

// List retrieves every ingredient
func (s *IngredientService) List(ctx context.Context) ([]*domain.Ingredient, error) {
	return s.IngredientRepo.List(ctx)
}
