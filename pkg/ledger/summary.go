package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// summaryService implements the SummaryService interface
type summaryService struct {
	client *Client
}

// Compute derives the whole-portfolio totals from the current snapshot.
// The current-month total is evaluated against the clock at call time,
// never cached.
func (s *summaryService) Compute(ctx context.Context) (*Summary, error) {
	expenses := s.client.expenses.List(ctx)
	currentMonth := MonthKeyOf(s.client.now())

	total := decimal.Zero
	monthlyTotal := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
		if expense.Date.MonthKey() == currentMonth {
			monthlyTotal = monthlyTotal.Add(expense.Amount)
		}
	}

	average := decimal.Zero
	if len(expenses) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(expenses))))
	}

	return &Summary{
		Total:        total,
		Count:        len(expenses),
		Average:      average,
		MonthlyTotal: monthlyTotal,
	}, nil
}
