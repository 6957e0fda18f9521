package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Seed is the dataset loaded into a fresh client. Records carry their
// ids so a fixture stays deterministic between runs.
type Seed struct {
	Expenses  []*Expense
	Budgets   []*Budget
	Recurring []*RecurringExpense
	Goals     []*SavingsGoal
}

// EmptySeed returns a seed that leaves the store blank
func EmptySeed() *Seed {
	return &Seed{}
}

// DefaultSeed returns the demonstration dataset: three expenses, one
// recurring template, one savings goal, and no budgets.
func DefaultSeed() *Seed {
	return &Seed{
		Expenses: []*Expense{
			{
				ID:          "1",
				Title:       "Grocery Shopping",
				Amount:      decimal.RequireFromString("85.50"),
				Category:    CategoryFood,
				Date:        MustParseDate("2025-01-15"),
				Description: "Weekly grocery shopping at the local supermarket",
			},
			{
				ID:          "2",
				Title:       "Monthly Rent",
				Amount:      decimal.RequireFromString("1200.00"),
				Category:    CategoryRent,
				Date:        MustParseDate("2025-01-01"),
				Description: "January rent payment",
			},
			{
				ID:          "3",
				Title:       "Bus Pass",
				Amount:      decimal.RequireFromString("45.00"),
				Category:    CategoryTransport,
				Date:        MustParseDate("2025-01-10"),
				Description: "Monthly public transport pass",
			},
		},
		Recurring: []*RecurringExpense{
			{
				ID:          "1",
				Title:       "Monthly Rent",
				Amount:      decimal.RequireFromString("1200.00"),
				Category:    CategoryRent,
				DayOfMonth:  1,
				Description: "Monthly apartment rent",
				IsActive:    true,
			},
		},
		Goals: []*SavingsGoal{
			{
				ID:            "1",
				Title:         "Emergency Fund",
				TargetAmount:  decimal.RequireFromString("5000.00"),
				CurrentAmount: decimal.RequireFromString("1250.00"),
				TargetDate:    MustParseDate("2025-12-31"),
				Description:   "6 months of expenses for emergencies",
			},
		},
	}
}

// applySeed replays the seed into the store in its given order
func (c *Client) applySeed(seed *Seed) {
	ctx := context.Background()
	for _, expense := range seed.Expenses {
		c.expenses.Append(ctx, expense)
	}
	for _, budget := range seed.Budgets {
		c.budgets.Append(ctx, budget)
	}
	for _, recurring := range seed.Recurring {
		c.recurring.Append(ctx, recurring)
	}
	for _, goal := range seed.Goals {
		c.goals.Append(ctx, goal)
	}
}
