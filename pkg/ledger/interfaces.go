package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExpenseService handles expense records and the filtered expense view
type ExpenseService interface {
	// Add stores a new expense at the front of the list (newest first)
	Add(ctx context.Context, params *CreateExpenseParams) (*Expense, error)

	// Update replaces the expense with a matching id by full-object
	// substitution. Unknown ids are a silent no-op.
	Update(ctx context.Context, expense *Expense) error

	// Delete removes the expense with the matching id. Unknown ids are
	// a silent no-op. Deleting the expense currently open for editing
	// clears the session's edit reference.
	Delete(ctx context.Context, id string) error

	// Get retrieves a single expense
	Get(ctx context.Context, id string) (*Expense, error)

	// List returns all expenses, newest first
	List(ctx context.Context) ([]*Expense, error)

	// Filter returns expenses matching the free-text term and category
	// selection, preserving list order. Empty term and empty category
	// match everything. The inputs are also written to the session.
	Filter(ctx context.Context, searchTerm string, category Category) ([]*Expense, error)
}

// BudgetService handles budget ceilings and their evaluation
type BudgetService interface {
	// Add stores a new budget. A budget for the same (category, month)
	// pair as an existing one is rejected.
	Add(ctx context.Context, params *CreateBudgetParams) (*Budget, error)

	// Update replaces the budget with a matching id. Unknown ids are a
	// silent no-op; duplicate (category, month) pairs are rejected.
	Update(ctx context.Context, budget *Budget) error

	// Delete removes the budget with the matching id; no-op if absent
	Delete(ctx context.Context, id string) error

	// Get retrieves a single budget
	Get(ctx context.Context, id string) (*Budget, error)

	// List returns all budgets in creation order
	List(ctx context.Context) ([]*Budget, error)

	// Evaluate computes spend-vs-budget status for every budget scoped
	// to the current calendar month. Recomputed from scratch on every
	// call.
	Evaluate(ctx context.Context) ([]*BudgetStatus, error)
}

// RecurringService handles recurring expense templates. Templates are
// never materialized into expense records; ToggleActive only flips
// display status.
type RecurringService interface {
	// Add stores a new template
	Add(ctx context.Context, params *CreateRecurringParams) (*RecurringExpense, error)

	// Update replaces the template with a matching id; no-op if absent
	Update(ctx context.Context, recurring *RecurringExpense) error

	// Delete removes the template with the matching id; no-op if absent
	Delete(ctx context.Context, id string) error

	// Get retrieves a single template
	Get(ctx context.Context, id string) (*RecurringExpense, error)

	// List returns all templates in creation order
	List(ctx context.Context) ([]*RecurringExpense, error)

	// ToggleActive flips the template's active flag; no-op if absent
	ToggleActive(ctx context.Context, id string) error
}

// GoalService handles savings goals, contributions, and progress
type GoalService interface {
	// Add stores a new goal with a zero current amount
	Add(ctx context.Context, params *CreateGoalParams) (*SavingsGoal, error)

	// Update replaces the goal with a matching id; no-op if absent
	Update(ctx context.Context, goal *SavingsGoal) error

	// Delete removes the goal with the matching id; no-op if absent
	Delete(ctx context.Context, id string) error

	// Get retrieves a single goal
	Get(ctx context.Context, id string) (*SavingsGoal, error)

	// List returns all goals in creation order
	List(ctx context.Context) ([]*SavingsGoal, error)

	// Contribute adds amount to the goal's current amount. The amount
	// must be positive; there is no upper clamp. Unknown ids are a
	// silent no-op. A successful contribution clears the session's
	// input buffer for the goal.
	Contribute(ctx context.Context, id string, amount decimal.Decimal) error

	// Progress computes completion state for every goal
	Progress(ctx context.Context) ([]*GoalProgress, error)
}

// InsightService derives trend and ranking views over the full,
// unfiltered expense list
type InsightService interface {
	// CategoryTotals returns the top 5 categories by total spend,
	// descending
	CategoryTotals(ctx context.Context) ([]*CategoryTotal, error)

	// MonthlyTrend returns per-month totals for the most recent 6
	// months that contain expenses, ascending by month
	MonthlyTrend(ctx context.Context) ([]*MonthlyTotal, error)

	// TopExpenses returns the 5 largest expenses, descending by amount
	TopExpenses(ctx context.Context) ([]*Expense, error)

	// DailyAverage returns total spend divided by the day span of the
	// expense set, with a one-day floor. Zero when there are no
	// expenses.
	DailyAverage(ctx context.Context) (decimal.Decimal, error)

	// Key returns the headline insight roll-up
	Key(ctx context.Context) (*KeyInsights, error)
}

// SummaryService computes whole-portfolio totals
type SummaryService interface {
	// Compute returns grand total, count, average, and the total for
	// the current calendar month. Pure function of store state.
	Compute(ctx context.Context) (*Summary, error)
}
