package ledger

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/pocketledger/pocketledger-go/internal/idgen"
)

// expenseService implements the ExpenseService interface
type expenseService struct {
	client *Client
}

// Add stores a new expense, newest first
func (s *expenseService) Add(ctx context.Context, params *CreateExpenseParams) (*Expense, error) {
	var created *Expense

	err := s.client.instrument(ctx, "expenses.add", func() error {
		if err := validateExpenseFields(params.Title, params.Amount, params.Category, params.Date); err != nil {
			return err
		}

		created = &Expense{
			ID:          idgen.New(),
			Title:       strings.TrimSpace(params.Title),
			Amount:      params.Amount,
			Category:    params.Category,
			Date:        params.Date,
			Description: params.Description,
		}
		s.client.expenses.Insert(ctx, created)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add expense")
	}

	return created, nil
}

// Update replaces the expense with a matching id; unknown ids no-op
func (s *expenseService) Update(ctx context.Context, expense *Expense) error {
	err := s.client.instrument(ctx, "expenses.update", func() error {
		if err := validateExpenseFields(expense.Title, expense.Amount, expense.Category, expense.Date); err != nil {
			return err
		}

		s.client.expenses.Replace(ctx, expense)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update expense")
	}
	return nil
}

// Delete removes the expense and clears a matching edit reference
func (s *expenseService) Delete(ctx context.Context, id string) error {
	return s.client.instrument(ctx, "expenses.delete", func() error {
		s.client.expenses.Remove(ctx, id)
		s.client.session.clearEditingIf(id)
		return nil
	})
}

// Get retrieves a single expense
func (s *expenseService) Get(ctx context.Context, id string) (*Expense, error) {
	expense, ok := s.client.expenses.Get(ctx, id)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "expense %s", id)
	}
	return expense, nil
}

// List returns all expenses, newest first
func (s *expenseService) List(ctx context.Context) ([]*Expense, error) {
	return s.client.expenses.List(ctx), nil
}

// Filter returns expenses matching the search term and category
func (s *expenseService) Filter(ctx context.Context, searchTerm string, category Category) ([]*Expense, error) {
	s.client.session.SetSearchTerm(searchTerm)
	s.client.session.SetCategory(category)

	expenses := s.client.expenses.List(ctx)
	term := strings.ToLower(searchTerm)

	matched := make([]*Expense, 0, len(expenses))
	for _, expense := range expenses {
		if matchesFilter(expense, term, category) {
			matched = append(matched, expense)
		}
	}
	return matched, nil
}

// matchesFilter applies the filter predicate: category exact-match (or
// no selection), and case-insensitive substring search over title and
// description (or no term).
func matchesFilter(expense *Expense, lowerTerm string, category Category) bool {
	if category != "" && expense.Category != category {
		return false
	}
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(expense.Title), lowerTerm) ||
		strings.Contains(strings.ToLower(expense.Description), lowerTerm)
}
