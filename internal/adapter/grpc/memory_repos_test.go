package grpc

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

type memoryData struct {
	ingredients map[uuid.UUID]domain.Ingredient
	expenses    map[uuid.UUID]domain.Expense
	taxes       map[uuid.UUID]domain.Tax
	payments    []domain.TaxPayment
	recipes     map[uuid.UUID]domain.Recipe
	history     []domain.IngredientHistoryEntry
}

func (d memoryData) clone() memoryData {
	return memoryData{
		ingredients: maps.Clone(d.ingredients),
		expenses:    maps.Clone(d.expenses),
		taxes:       maps.Clone(d.taxes),
		payments:    slices.Clone(d.payments),
		recipes:     maps.Clone(d.recipes),
		history:     slices.Clone(d.history),
	}
}

// memoryStore backs every repository interface with maps for adapter tests
type memoryStore struct {
	mu sync.Mutex
	memoryData

	// failHistoryAdds makes the next n history appends fail
	failHistoryAdds int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		memoryData: memoryData{
			ingredients: make(map[uuid.UUID]domain.Ingredient),
			expenses:    make(map[uuid.UUID]domain.Expense),
			taxes:       make(map[uuid.UUID]domain.Tax),
			recipes:     make(map[uuid.UUID]domain.Recipe),
		},
	}
}

// WithinTx restores every map when fn fails
func (s *memoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	saved := s.memoryData.clone()
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.memoryData = saved
		s.mu.Unlock()
		return err
	}
	return nil
}

type memoryIngredients struct{ *memoryStore }

func (s memoryIngredients) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.ingredients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &i, nil
}

func (s memoryIngredients) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.ingredients {
		if existing.Name == ingredient.Name {
			return domain.ErrDuplicateName
		}
	}
	s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (s memoryIngredients) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ingredients[ingredient.ID]; !ok {
		return domain.ErrNotFound
	}
	s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (s memoryIngredients) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ingredients, id)
	return nil
}

func (s memoryIngredients) List(ctx context.Context) ([]*domain.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Ingredient, 0, len(s.ingredients))
	for _, i := range s.ingredients {
		i := i
		out = append(out, &i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (s memoryIngredients) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Ingredient, 0, len(ids))
	for _, id := range ids {
		if i, ok := s.ingredients[id]; ok {
			out = append(out, &i)
		}
	}
	return out, nil
}

type memoryExpenses struct{ *memoryStore }

func (s memoryExpenses) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.expenses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (s memoryExpenses) Create(ctx context.Context, expense *domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[expense.ID] = *expense
	return nil
}

func (s memoryExpenses) Update(ctx context.Context, expense *domain.Expense) error {
	return s.Create(ctx, expense)
}

func (s memoryExpenses) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expenses, id)
	return nil
}

func (s memoryExpenses) List(ctx context.Context) ([]*domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		e := e
		out = append(out, &e)
	}
	return out, nil
}

type memoryTaxes struct{ *memoryStore }

func (s memoryTaxes) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.taxes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s memoryTaxes) Create(ctx context.Context, tax *domain.Tax) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taxes[tax.ID] = *tax
	return nil
}

func (s memoryTaxes) List(ctx context.Context) ([]*domain.Tax, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Tax, 0, len(s.taxes))
	for _, t := range s.taxes {
		t := t
		out = append(out, &t)
	}
	return out, nil
}

func (s memoryTaxes) AddPayment(ctx context.Context, payment *domain.TaxPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, *payment)
	return nil
}

func (s memoryTaxes) ListPayments(ctx context.Context, taxID uuid.UUID) ([]*domain.TaxPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.TaxPayment, 0)
	for _, p := range s.payments {
		if p.TaxID == taxID {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

func (s memoryTaxes) UpdateAverage(ctx context.Context, tax *domain.Tax) error {
	return s.Create(ctx, tax)
}

func (s memoryTaxes) LockByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	return s.GetByID(ctx, id)
}

type memoryRecipes struct{ *memoryStore }

func (s memoryRecipes) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (s memoryRecipes) Create(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[recipe.ID] = *recipe
	return nil
}

func (s memoryRecipes) UpdatePrice(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.recipes[recipe.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.TotalCost = recipe.TotalCost
	stored.FinalPrice = recipe.FinalPrice
	stored.PricedAt = recipe.PricedAt
	s.recipes[recipe.ID] = stored
	return nil
}

func (s memoryRecipes) List(ctx context.Context) ([]*domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (s memoryRecipes) CountUsagesOfIngredient(ctx context.Context, ingredientID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, r := range s.recipes {
		for _, u := range r.Ingredients {
			if u.IngredientID == ingredientID {
				count++
			}
		}
	}
	return count, nil
}

type memoryHistory struct{ *memoryStore }

func (s memoryHistory) Add(ctx context.Context, entry *domain.IngredientHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failHistoryAdds > 0 {
		s.failHistoryAdds--
		return errors.New("history log unavailable")
	}
	s.history = append(s.history, *entry)
	return nil
}

func (s memoryHistory) ListByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*domain.IngredientHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.IngredientHistoryEntry, 0)
	for _, e := range s.history {
		if e.IngredientID == ingredientID {
			e := e
			out = append(out, &e)
		}
	}
	return out, nil
}
