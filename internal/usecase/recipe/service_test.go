package recipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/recipecost-backend/internal/domain"
	"github.com/simaogato/recipecost-backend/internal/metrics"
)

// MockIngredientRepository is a mock implementation of IngredientRepository for testing
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIngredientRepository) List(ctx context.Context) ([]*domain.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ingredient), args.Error(1)
}

// MockExpenseRepository is a mock implementation of ExpenseRepository for testing
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

// MockTaxRepository is a mock implementation of TaxRepository for testing
type MockTaxRepository struct {
	mock.Mock
}

func (m *MockTaxRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tax), args.Error(1)
}

func (m *MockTaxRepository) Create(ctx context.Context, tax *domain.Tax) error {
	args := m.Called(ctx, tax)
	return args.Error(0)
}

func (m *MockTaxRepository) List(ctx context.Context) ([]*domain.Tax, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tax), args.Error(1)
}

func (m *MockTaxRepository) AddPayment(ctx context.Context, payment *domain.TaxPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockTaxRepository) ListPayments(ctx context.Context, taxID uuid.UUID) ([]*domain.TaxPayment, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TaxPayment), args.Error(1)
}

func (m *MockTaxRepository) UpdateAverage(ctx context.Context, tax *domain.Tax) error {
	args := m.Called(ctx, tax)
	return args.Error(0)
}

func (m *MockTaxRepository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tax), args.Error(1)
}

// MockRecipeRepository is a mock implementation of RecipeRepository for testing
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdatePrice(ctx context.Context, recipe *domain.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CountUsagesOfIngredient(ctx context.Context, ingredientID uuid.UUID) (int, error) {
	args := m.Called(ctx, ingredientID)
	return args.Int(0), args.Error(1)
}

type fixture struct {
	service        *RecipeService
	metrics        *metrics.Metrics
	ingredientRepo *MockIngredientRepository
	expenseRepo    *MockExpenseRepository
	taxRepo        *MockTaxRepository
	recipeRepo     *MockRecipeRepository
	now            time.Time
}

func newFixture() *fixture {
	f := &fixture{
		metrics:        metrics.New(),
		ingredientRepo: new(MockIngredientRepository),
		expenseRepo:    new(MockExpenseRepository),
		taxRepo:        new(MockTaxRepository),
		recipeRepo:     new(MockRecipeRepository),
		now:            time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewRecipeService(f.ingredientRepo, f.expenseRepo, f.taxRepo, f.recipeRepo, f.metrics, nil)
	f.service.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) withOperationalCosts(ctx context.Context) {
	// 1800 / 30 days / 10 h / 60 min = 0.1 per minute
	f.expenseRepo.On("List", ctx).Return([]*domain.Expense{
		{ID: uuid.New(), Name: "Aluguel", MonthlyCost: decimal.NewFromInt(1800), OperatingHoursPerDay: decimal.NewFromInt(10)},
	}, nil)
	f.taxRepo.On("List", ctx).Return([]*domain.Tax{}, nil)
}

func cheese() *domain.Ingredient {
	return &domain.Ingredient{
		ID:               uuid.New(),
		Name:             "Queijo",
		PurchaseCost:     decimal.NewFromInt(50),
		PurchaseUnit:     "g",
		PurchaseQuantity: decimal.NewFromInt(100),
		Category:         domain.IngredientCategoryDairy,
	}
}

func TestCreate_PricesAndPersists(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := cheese()

	f.ingredientRepo.On("ListByIDs", ctx, []uuid.UUID{c.ID}).Return([]*domain.Ingredient{c}, nil)
	f.withOperationalCosts(ctx)
	f.recipeRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Recipe) bool {
		return r.Name == "Pão de queijo" &&
			len(r.Ingredients) == 1 &&
			r.Ingredients[0].RecipeID == r.ID &&
			r.TotalCost.Equal(decimal.NewFromInt(6)) &&
			r.FinalPrice.Equal(decimal.RequireFromString("7.2")) &&
			r.PricedAt != nil && r.PricedAt.Equal(f.now)
	})).Return(nil)

	priced, err := f.service.Create(ctx, CreateRecipeInput{
		Name:            "Pão de queijo",
		PrepTimeMinutes: decimal.NewFromInt(10),
		ProfitMarginPct: decimal.NewFromInt(20),
		Usages:          []UsageInput{{IngredientID: c.ID, Quantity: decimal.NewFromInt(10)}},
	})

	require.NoError(t, err)
	assert.True(t, priced.Breakdown.IngredientsCost.Equal(decimal.NewFromInt(5)))
	assert.True(t, priced.Breakdown.OperationalCost.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RecipesPriced))
	f.recipeRepo.AssertExpectations(t)
}

func TestCreate_UnknownIngredient(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	missing := uuid.New()

	f.ingredientRepo.On("ListByIDs", ctx, []uuid.UUID{missing}).Return([]*domain.Ingredient{}, nil)

	_, err := f.service.Create(ctx, CreateRecipeInput{
		Name:   "Bolo",
		Usages: []UsageInput{{IngredientID: missing, Quantity: decimal.NewFromInt(1)}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.recipeRepo.AssertNotCalled(t, "Create")
}

func TestCreate_InvalidRecipe(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service.Create(ctx, CreateRecipeInput{Name: "Bolo", ProfitMarginPct: decimal.NewFromInt(-1)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.ingredientRepo.AssertNotCalled(t, "ListByIDs")
}

func TestPrice_UsesCurrentIngredientValues(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := cheese()
	c.PurchaseCost = decimal.NewFromInt(100) // price went up since creation

	recipe := &domain.Recipe{
		ID:              uuid.New(),
		Name:            "Pão de queijo",
		PrepTimeMinutes: decimal.NewFromInt(10),
		ProfitMarginPct: decimal.NewFromInt(20),
		Ingredients:     []domain.RecipeIngredient{{IngredientID: c.ID, Quantity: decimal.NewFromInt(10)}},
		TotalCost:       decimal.NewFromInt(6),
		FinalPrice:      decimal.RequireFromString("7.2"),
	}

	f.recipeRepo.On("GetByID", ctx, recipe.ID).Return(recipe, nil)
	f.ingredientRepo.On("ListByIDs", ctx, []uuid.UUID{c.ID}).Return([]*domain.Ingredient{c}, nil)
	f.withOperationalCosts(ctx)
	f.recipeRepo.On("UpdatePrice", ctx, mock.MatchedBy(func(r *domain.Recipe) bool {
		// 10 + 1 = 11; 11 * 1.2 = 13.2
		return r.TotalCost.Equal(decimal.NewFromInt(11)) && r.FinalPrice.Equal(decimal.RequireFromString("13.2"))
	})).Return(nil)

	priced, err := f.service.Price(ctx, recipe.ID)

	require.NoError(t, err)
	assert.True(t, priced.Recipe.FinalPrice.Equal(decimal.RequireFromString("13.2")))
	f.recipeRepo.AssertExpectations(t)
}

func TestQuote_DoesNotPersist(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := cheese()

	f.ingredientRepo.On("ListByIDs", ctx, []uuid.UUID{c.ID}).Return([]*domain.Ingredient{c}, nil)
	f.withOperationalCosts(ctx)

	breakdown, err := f.service.Quote(ctx, QuoteInput{
		PrepTimeMinutes: decimal.NewFromInt(10),
		Usages:          []UsageInput{{IngredientID: c.ID, Quantity: decimal.NewFromInt(20)}},
	})

	require.NoError(t, err)
	assert.True(t, breakdown.FinalPrice.Equal(decimal.NewFromInt(11)))
	f.recipeRepo.AssertNotCalled(t, "Create")
	f.recipeRepo.AssertNotCalled(t, "UpdatePrice")
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.RecipesPriced))
}

func TestRepriceAll_IsolatesFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := cheese()

	good := &domain.Recipe{ID: uuid.New(), Name: "A", Ingredients: []domain.RecipeIngredient{{IngredientID: c.ID, Quantity: decimal.NewFromInt(10)}}}
	broken := &domain.Recipe{ID: uuid.New(), Name: "B"}
	other := &domain.Recipe{ID: uuid.New(), Name: "C", PrepTimeMinutes: decimal.NewFromInt(5)}

	f.recipeRepo.On("List", ctx).Return([]*domain.Recipe{good, broken, other}, nil)
	f.ingredientRepo.On("List", ctx).Return([]*domain.Ingredient{c}, nil)
	f.withOperationalCosts(ctx)
	f.recipeRepo.On("UpdatePrice", ctx, broken).Return(errors.New("deadlock detected"))
	f.recipeRepo.On("UpdatePrice", ctx, mock.Anything).Return(nil)

	report, err := f.service.RepriceAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, RepriceReport{Priced: 2, Failed: 1}, report)
	assert.True(t, good.FinalPrice.Equal(decimal.NewFromInt(5)))
	assert.True(t, other.FinalPrice.Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RepricingFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RepricingRuns.WithLabelValues("partial")))
	f.recipeRepo.AssertNumberOfCalls(t, "UpdatePrice", 3)
}

func TestRepriceAll_ListFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.recipeRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

	_, err := f.service.RepriceAll(ctx)

	assert.Error(t, err)
	f.recipeRepo.AssertNotCalled(t, "UpdatePrice")
}
