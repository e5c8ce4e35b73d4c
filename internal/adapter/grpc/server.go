package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	recipecostv1 "github.com/simaogato/recipecost-backend/internal/adapter/grpc/recipecost/v1"
	"github.com/simaogato/recipecost-backend/internal/domain"
	"github.com/simaogato/recipecost-backend/internal/usecase/dashboard"
	"github.com/simaogato/recipecost-backend/internal/usecase/expense"
	"github.com/simaogato/recipecost-backend/internal/usecase/ingredient"
	"github.com/simaogato/recipecost-backend/internal/usecase/recipe"
	"github.com/simaogato/recipecost-backend/internal/usecase/tax"
)

// Server implements the RecipeCostService gRPC server
type Server struct {
	recipecostv1.UnimplementedRecipeCostServiceServer

	IngredientService *ingredient.IngredientService
	ExpenseService    *expense.ExpenseService
	TaxService        *tax.TaxService
	RecipeService     *recipe.RecipeService
	DashboardService  *dashboard.DashboardService
}

// NewServer creates a new gRPC server instance
func NewServer(
	ingredientService *ingredient.IngredientService,
	expenseService *expense.ExpenseService,
	taxService *tax.TaxService,
	recipeService *recipe.RecipeService,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		IngredientService: ingredientService,
		ExpenseService:    expenseService,
		TaxService:        taxService,
		RecipeService:     recipeService,
		DashboardService:  dashboardService,
	}
}

func ingredientInput(name, cost, unit, quantity, waste, category string) (ingredient.IngredientInput, error) {
	purchaseCost, err := parseDecimal("purchase_cost", cost)
	if err != nil {
		return ingredient.IngredientInput{}, err
	}

	// Optional: zero falls back to the unit default
	purchaseQuantity, err := parseOptionalDecimal("purchase_quantity", quantity)
	if err != nil {
		return ingredient.IngredientInput{}, err
	}

	wasteRate, err := parseOptionalDecimal("waste_rate", waste)
	if err != nil {
		return ingredient.IngredientInput{}, err
	}

	return ingredient.IngredientInput{
		Name:             name,
		PurchaseCost:     purchaseCost,
		PurchaseUnit:     unit,
		PurchaseQuantity: purchaseQuantity,
		WasteRate:        wasteRate,
		Category:         domain.IngredientCategory(category),
	}, nil
}

// RegisterIngredient handles the RegisterIngredient RPC
func (s *Server) RegisterIngredient(ctx context.Context, req *recipecostv1.RegisterIngredientRequest) (*recipecostv1.RegisterIngredientResponse, error) {
	input, err := ingredientInput(req.Name, req.PurchaseCost, req.PurchaseUnit, req.PurchaseQuantity, req.WasteRate, req.Category)
	if err != nil {
		return nil, err
	}

	created, err := s.IngredientService.Register(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.RegisterIngredientResponse{
		Ingredient: domainIngredientToProto(created),
	}, nil
}

// UpdateIngredient handles the UpdateIngredient RPC
func (s *Server) UpdateIngredient(ctx context.Context, req *recipecostv1.UpdateIngredientRequest) (*recipecostv1.UpdateIngredientResponse, error) {
	id, err := parseID("ingredient_id", req.IngredientId)
	if err != nil {
		return nil, err
	}

	input, err := ingredientInput(req.Name, req.PurchaseCost, req.PurchaseUnit, req.PurchaseQuantity, req.WasteRate, req.Category)
	if err != nil {
		return nil, err
	}

	updated, err := s.IngredientService.Update(ctx, id, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.UpdateIngredientResponse{
		Ingredient: domainIngredientToProto(updated),
	}, nil
}

// GetIngredient handles the GetIngredient RPC
func (s *Server) GetIngredient(ctx context.Context, req *recipecostv1.GetIngredientRequest) (*recipecostv1.GetIngredientResponse, error) {
	id, err := parseID("ingredient_id", req.IngredientId)
	if err != nil {
		return nil, err
	}

	found, err := s.IngredientService.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.GetIngredientResponse{
		Ingredient: domainIngredientToProto(found),
	}, nil
}

// DeleteIngredient handles the DeleteIngredient RPC
func (s *Server) DeleteIngredient(ctx context.Context, req *recipecostv1.DeleteIngredientRequest) (*recipecostv1.DeleteIngredientResponse, error) {
	id, err := parseID("ingredient_id", req.IngredientId)
	if err != nil {
		return nil, err
	}

	if err := s.IngredientService.Delete(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.DeleteIngredientResponse{}, nil
}

// ListIngredients handles the ListIngredients RPC
func (s *Server) ListIngredients(ctx context.Context, req *recipecostv1.ListIngredientsRequest) (*recipecostv1.ListIngredientsResponse, error) {
	ingredients, err := s.IngredientService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoIngredients := make([]*recipecostv1.Ingredient, 0, len(ingredients))
	for _, i := range ingredients {
		protoIngredients = append(protoIngredients, domainIngredientToProto(i))
	}

	return &recipecostv1.ListIngredientsResponse{
		Ingredients: protoIngredients,
	}, nil
}

func expenseInput(name, monthlyCost, hours string) (expense.ExpenseInput, error) {
	cost, err := parseDecimal("monthly_cost", monthlyCost)
	if err != nil {
		return expense.ExpenseInput{}, err
	}

	hoursPerDay, err := parseDecimal("operating_hours_per_day", hours)
	if err != nil {
		return expense.ExpenseInput{}, err
	}

	return expense.ExpenseInput{
		Name:                 name,
		MonthlyCost:          cost,
		OperatingHoursPerDay: hoursPerDay,
	}, nil
}

// RegisterExpense handles the RegisterExpense RPC
func (s *Server) RegisterExpense(ctx context.Context, req *recipecostv1.RegisterExpenseRequest) (*recipecostv1.RegisterExpenseResponse, error) {
	input, err := expenseInput(req.Name, req.MonthlyCost, req.OperatingHoursPerDay)
	if err != nil {
		return nil, err
	}

	created, err := s.ExpenseService.Register(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.RegisterExpenseResponse{
		Expense: domainExpenseToProto(created),
	}, nil
}

// UpdateExpense handles the UpdateExpense RPC
func (s *Server) UpdateExpense(ctx context.Context, req *recipecostv1.UpdateExpenseRequest) (*recipecostv1.UpdateExpenseResponse, error) {
	id, err := parseID("expense_id", req.ExpenseId)
	if err != nil {
		return nil, err
	}

	input, err := expenseInput(req.Name, req.MonthlyCost, req.OperatingHoursPerDay)
	if err != nil {
		return nil, err
	}

	updated, err := s.ExpenseService.Update(ctx, id, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.UpdateExpenseResponse{
		Expense: domainExpenseToProto(updated),
	}, nil
}

// DeleteExpense handles the DeleteExpense RPC
func (s *Server) DeleteExpense(ctx context.Context, req *recipecostv1.DeleteExpenseRequest) (*recipecostv1.DeleteExpenseResponse, error) {
	id, err := parseID("expense_id", req.ExpenseId)
	if err != nil {
		return nil, err
	}

	if err := s.ExpenseService.Delete(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.DeleteExpenseResponse{}, nil
}

// ListExpenses handles the ListExpenses RPC
func (s *Server) ListExpenses(ctx context.Context, req *recipecostv1.ListExpensesRequest) (*recipecostv1.ListExpensesResponse, error) {
	expenses, err := s.ExpenseService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoExpenses := make([]*recipecostv1.Expense, 0, len(expenses))
	for _, e := range expenses {
		protoExpenses = append(protoExpenses, domainExpenseToProto(e))
	}

	return &recipecostv1.ListExpensesResponse{
		Expenses: protoExpenses,
	}, nil
}

// RegisterTax handles the RegisterTax RPC
func (s *Server) RegisterTax(ctx context.Context, req *recipecostv1.RegisterTaxRequest) (*recipecostv1.RegisterTaxResponse, error) {
	created, err := s.TaxService.Register(ctx, tax.TaxInput{
		Name:      req.Name,
		Category:  req.Category,
		Frequency: domain.PaymentFrequency(req.Frequency),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.RegisterTaxResponse{
		Tax: domainTaxToProto(created),
	}, nil
}

// RecordTaxPayment handles the RecordTaxPayment RPC
func (s *Server) RecordTaxPayment(ctx context.Context, req *recipecostv1.RecordTaxPaymentRequest) (*recipecostv1.RecordTaxPaymentResponse, error) {
	taxID, err := parseID("tax_id", req.TaxId)
	if err != nil {
		return nil, err
	}

	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	input := tax.PaymentInput{
		TaxID:  taxID,
		Amount: amount,
	}

	// Optional: missing paid_at means now
	if req.PaidAt != nil {
		if err := req.PaidAt.CheckValid(); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid paid_at: %v", err)
		}
		input.Date = req.PaidAt.AsTime()
	}

	updated, err := s.TaxService.RecordPayment(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.RecordTaxPaymentResponse{
		Tax: domainTaxToProto(updated),
	}, nil
}

// ListTaxes handles the ListTaxes RPC
func (s *Server) ListTaxes(ctx context.Context, req *recipecostv1.ListTaxesRequest) (*recipecostv1.ListTaxesResponse, error) {
	taxes, err := s.TaxService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoTaxes := make([]*recipecostv1.Tax, 0, len(taxes))
	for _, t := range taxes {
		protoTaxes = append(protoTaxes, domainTaxToProto(t))
	}

	return &recipecostv1.ListTaxesResponse{
		Taxes: protoTaxes,
	}, nil
}

// ListTaxPayments handles the ListTaxPayments RPC
func (s *Server) ListTaxPayments(ctx context.Context, req *recipecostv1.ListTaxPaymentsRequest) (*recipecostv1.ListTaxPaymentsResponse, error) {
	taxID, err := parseID("tax_id", req.TaxId)
	if err != nil {
		return nil, err
	}

	payments, err := s.TaxService.Payments(ctx, taxID)
	if err != nil {
		return nil, mapError(err)
	}

	protoPayments := make([]*recipecostv1.TaxPayment, 0, len(payments))
	for _, p := range payments {
		protoPayments = append(protoPayments, domainTaxPaymentToProto(p))
	}

	return &recipecostv1.ListTaxPaymentsResponse{
		Payments: protoPayments,
	}, nil
}

// CreateRecipe handles the CreateRecipe RPC
func (s *Server) CreateRecipe(ctx context.Context, req *recipecostv1.CreateRecipeRequest) (*recipecostv1.CreateRecipeResponse, error) {
	prepTime, err := parseOptionalDecimal("prep_time_minutes", req.PrepTimeMinutes)
	if err != nil {
		return nil, err
	}

	margin, err := parseOptionalDecimal("profit_margin_pct", req.ProfitMarginPct)
	if err != nil {
		return nil, err
	}

	usages, err := parseUsages(req.Usages)
	if err != nil {
		return nil, err
	}

	priced, err := s.RecipeService.Create(ctx, recipe.CreateRecipeInput{
		Name:            req.Name,
		Category:        req.Category,
		PrepTimeMinutes: prepTime,
		ProfitMarginPct: margin,
		Usages:          usages,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.CreateRecipeResponse{
		Recipe:    domainRecipeToProto(priced.Recipe),
		Breakdown: breakdownToProto(priced.Breakdown),
	}, nil
}

// PriceRecipe handles the PriceRecipe RPC
func (s *Server) PriceRecipe(ctx context.Context, req *recipecostv1.PriceRecipeRequest) (*recipecostv1.PriceRecipeResponse, error) {
	recipeID, err := parseID("recipe_id", req.RecipeId)
	if err != nil {
		return nil, err
	}

	priced, err := s.RecipeService.Price(ctx, recipeID)
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.PriceRecipeResponse{
		Recipe:    domainRecipeToProto(priced.Recipe),
		Breakdown: breakdownToProto(priced.Breakdown),
	}, nil
}

// QuoteRecipe handles the QuoteRecipe RPC
func (s *Server) QuoteRecipe(ctx context.Context, req *recipecostv1.QuoteRecipeRequest) (*recipecostv1.QuoteRecipeResponse, error) {
	prepTime, err := parseOptionalDecimal("prep_time_minutes", req.PrepTimeMinutes)
	if err != nil {
		return nil, err
	}

	margin, err := parseOptionalDecimal("profit_margin_pct", req.ProfitMarginPct)
	if err != nil {
		return nil, err
	}

	usages, err := parseUsages(req.Usages)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.RecipeService.Quote(ctx, recipe.QuoteInput{
		PrepTimeMinutes: prepTime,
		ProfitMarginPct: margin,
		Usages:          usages,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &recipecostv1.QuoteRecipeResponse{
		Breakdown: breakdownToProto(breakdown),
	}, nil
}

// GetIngredientHistory handles the GetIngredientHistory RPC
func (s *Server) GetIngredientHistory(ctx context.Context, req *recipecostv1.GetIngredientHistoryRequest) (*recipecostv1.GetIngredientHistoryResponse, error) {
	id, err := parseID("ingredient_id", req.IngredientId)
	if err != nil {
		return nil, err
	}

	chart, err := s.DashboardService.GetIngredientChart(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	points := make([]*recipecostv1.HistoryPoint, 0, len(chart.Series))
	for _, entry := range chart.Series {
		points = append(points, historyEntryToProto(entry))
	}

	return &recipecostv1.GetIngredientHistoryResponse{
		Ingredient: domainIngredientToProto(chart.Ingredient),
		Points:     points,
		AxisMin:    chart.Axis.Min.String(),
		AxisMax:    chart.Axis.MaxLabel(),
	}, nil
}

// GetPricingOverview handles the GetPricingOverview RPC
func (s *Server) GetPricingOverview(ctx context.Context, req *recipecostv1.GetPricingOverviewRequest) (*recipecostv1.GetPricingOverviewResponse, error) {
	overview, err := s.DashboardService.GetOverview(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	recipes := make([]*recipecostv1.RecipeOverview, 0, len(overview.Recipes))
	for _, summary := range overview.Recipes {
		recipes = append(recipes, &recipecostv1.RecipeOverview{
			Recipe:    domainRecipeToProto(summary.Recipe),
			Breakdown: breakdownToProto(summary.Breakdown),
			Stale:     summary.Stale,
		})
	}

	return &recipecostv1.GetPricingOverviewResponse{
		OperationalRatePerMinute: overview.OperationalRatePerMinute.String(),
		Recipes:                  recipes,
		StaleCount:               int32(overview.StaleCount),
	}, nil
}
