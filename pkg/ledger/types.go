package ledger

import (
	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense
type Expense struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
}

// RecordID implements store.Record
func (e *Expense) RecordID() string { return e.ID }

// Budget represents a spending ceiling for one category in one calendar month
type Budget struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month"` // YYYY-MM
}

// RecordID implements store.Record
func (b *Budget) RecordID() string { return b.ID }

// RecurringExpense is a recurring charge template. It describes a
// pattern only; the tracker never materializes it into Expense records.
type RecurringExpense struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	DayOfMonth  int             `json:"dayOfMonth"` // 1..28
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// RecordID implements store.Record
func (r *RecurringExpense) RecordID() string { return r.ID }

// SavingsGoal represents a savings target with accumulated contributions
type SavingsGoal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    Date            `json:"targetDate"`
	Description   string          `json:"description,omitempty"`
}

// RecordID implements store.Record
func (g *SavingsGoal) RecordID() string { return g.ID }

// BudgetStanding classifies spend against a budget ceiling
type BudgetStanding string

const (
	// StatusOnTrack means spend is at or below 80% of the budget
	StatusOnTrack BudgetStanding = "ON_TRACK"

	// StatusNearLimit means spend exceeds 80% of the budget but not the budget itself
	StatusNearLimit BudgetStanding = "NEAR_LIMIT"

	// StatusOverBudget means spend strictly exceeds the budget
	StatusOverBudget BudgetStanding = "OVER_BUDGET"
)

// BudgetStatus is the evaluated state of one current-month budget
type BudgetStatus struct {
	Budget *Budget `json:"budget"`

	// Spent is the summed amount of this month's expenses in the budget's category
	Spent decimal.Decimal `json:"spent"`

	// Percentage is spent/amount*100. It is +Inf for a zero-amount
	// budget with positive spend.
	Percentage float64 `json:"percentage"`

	Status BudgetStanding `json:"status"`

	// Remaining is |amount - spent|; Status indicates whether it is
	// headroom or overage.
	Remaining decimal.Decimal `json:"remaining"`

	// DisplayRatio is Percentage capped at 100, for progress bars
	DisplayRatio float64 `json:"displayRatio"`
}

// GoalProgress is the evaluated state of one savings goal
type GoalProgress struct {
	Goal *SavingsGoal `json:"goal"`

	// Percentage is current/target*100, or 100 when the target is zero
	Percentage float64 `json:"percentage"`

	IsCompleted bool `json:"isCompleted"`

	// DaysRemaining counts days until the target date, rounded up.
	// Negative when the target date has passed.
	DaysRemaining int `json:"daysRemaining"`

	// IsOverdue is set when the target date has passed and the goal is
	// not completed. A completed goal is never overdue.
	IsOverdue bool `json:"isOverdue"`

	// Remaining is target - current, floored at zero
	Remaining decimal.Decimal `json:"remaining"`
}

// CategoryTotal is the summed spend for one category
type CategoryTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyTotal is the summed spend for one month key
type MonthlyTotal struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

// KeyInsights is the headline roll-up of the insight views
type KeyInsights struct {
	// BiggestCategory is the top category by total spend; empty when
	// there are no expenses.
	BiggestCategory Category        `json:"biggestCategory"`
	BiggestTotal    decimal.Decimal `json:"biggestTotal"`

	// LargestExpense is nil when there are no expenses
	LargestExpense *Expense `json:"largestExpense"`

	DailyAverage decimal.Decimal `json:"dailyAverage"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

// Summary is the whole-portfolio aggregate
type Summary struct {
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
	Average      decimal.Decimal `json:"average"`
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
}

// Parameter structures

// CreateExpenseParams for adding expenses
type CreateExpenseParams struct {
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
}

// CreateBudgetParams for adding budgets
type CreateBudgetParams struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month"` // YYYY-MM
}

// CreateRecurringParams for adding recurring templates
type CreateRecurringParams struct {
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	DayOfMonth  int             `json:"dayOfMonth"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// CreateGoalParams for adding savings goals
type CreateGoalParams struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetDate   Date            `json:"targetDate"`
	Description  string          `json:"description,omitempty"`
}
