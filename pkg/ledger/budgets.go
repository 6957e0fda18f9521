package ledger

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger-go/internal/idgen"
)

// nearLimitThreshold is the percentage above which a budget is flagged
// before it is actually exceeded
const nearLimitThreshold = 80.0

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// Add stores a new budget, rejecting duplicate (category, month) pairs
func (s *budgetService) Add(ctx context.Context, params *CreateBudgetParams) (*Budget, error) {
	var created *Budget

	err := s.client.instrument(ctx, "budgets.add", func() error {
		if err := validateBudgetFields(params.Category, params.Amount, params.Month); err != nil {
			return err
		}
		if s.hasDuplicate(ctx, params.Category, params.Month, "") {
			return invalidField("category", "a budget for this category and month already exists", string(params.Category))
		}

		created = &Budget{
			ID:       idgen.New(),
			Category: params.Category,
			Amount:   params.Amount,
			Month:    params.Month,
		}
		s.client.budgets.Insert(ctx, created)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add budget")
	}

	return created, nil
}

// Update replaces the budget with a matching id; unknown ids no-op
func (s *budgetService) Update(ctx context.Context, budget *Budget) error {
	err := s.client.instrument(ctx, "budgets.update", func() error {
		if err := validateBudgetFields(budget.Category, budget.Amount, budget.Month); err != nil {
			return err
		}
		if s.hasDuplicate(ctx, budget.Category, budget.Month, budget.ID) {
			return invalidField("category", "a budget for this category and month already exists", string(budget.Category))
		}

		s.client.budgets.Replace(ctx, budget)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update budget")
	}
	return nil
}

// Delete removes the budget with the matching id; no-op if absent
func (s *budgetService) Delete(ctx context.Context, id string) error {
	return s.client.instrument(ctx, "budgets.delete", func() error {
		s.client.budgets.Remove(ctx, id)
		return nil
	})
}

// Get retrieves a single budget
func (s *budgetService) Get(ctx context.Context, id string) (*Budget, error) {
	budget, ok := s.client.budgets.Get(ctx, id)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "budget %s", id)
	}
	return budget, nil
}

// List returns all budgets in creation order
func (s *budgetService) List(ctx context.Context) ([]*Budget, error) {
	return s.client.budgets.List(ctx), nil
}

// Evaluate computes spend-vs-budget status for current-month budgets.
// Budgets scoped to other months are not evaluated or displayed.
func (s *budgetService) Evaluate(ctx context.Context) ([]*BudgetStatus, error) {
	currentMonth := MonthKeyOf(s.client.now())
	expenses := s.client.expenses.List(ctx)

	var statuses []*BudgetStatus
	for _, budget := range s.client.budgets.List(ctx) {
		if budget.Month != currentMonth {
			continue
		}
		statuses = append(statuses, evaluateBudget(budget, expenses, currentMonth))
	}
	return statuses, nil
}

// hasDuplicate reports whether another budget covers the same category
// and month
func (s *budgetService) hasDuplicate(ctx context.Context, category Category, month, excludeID string) bool {
	for _, existing := range s.client.budgets.List(ctx) {
		if existing.ID != excludeID && existing.Category == category && existing.Month == month {
			return true
		}
	}
	return false
}

// evaluateBudget derives one budget's status from the expense snapshot
func evaluateBudget(budget *Budget, expenses []*Expense, month string) *BudgetStatus {
	spent := decimal.Zero
	for _, expense := range expenses {
		if expense.Date.MonthKey() == month && expense.Category == budget.Category {
			spent = spent.Add(expense.Amount)
		}
	}

	var percentage float64
	switch {
	case budget.Amount.IsZero() && spent.IsZero():
		percentage = 0
	case budget.Amount.IsZero():
		percentage = math.Inf(1)
	default:
		percentage = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	// Over-budget is strict: spending exactly the budget is on track
	status := StatusOnTrack
	switch {
	case spent.GreaterThan(budget.Amount):
		status = StatusOverBudget
	case percentage > nearLimitThreshold:
		status = StatusNearLimit
	}

	return &BudgetStatus{
		Budget:       budget,
		Spent:        spent,
		Percentage:   percentage,
		Status:       status,
		Remaining:    budget.Amount.Sub(spent).Abs(),
		DisplayRatio: math.Min(percentage, 100),
	}
}
