package ledger

import (
	"context"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// insightTopN bounds the category and expense rankings
const insightTopN = 5

// trendMonths bounds the monthly trend to the most recent months that
// actually contain expenses
const trendMonths = 6

// insightService implements the InsightService interface. Every view
// is recomputed from the full, unfiltered expense snapshot on each
// call; nothing is cached.
type insightService struct {
	client *Client
}

// CategoryTotals returns the top categories by total spend, descending
func (s *insightService) CategoryTotals(ctx context.Context) ([]*CategoryTotal, error) {
	expenses := s.client.expenses.List(ctx)

	// Group in first-appearance order so the stable sort keeps that
	// order among equal totals
	index := make(map[Category]int)
	var totals []*CategoryTotal
	for _, expense := range expenses {
		i, ok := index[expense.Category]
		if !ok {
			index[expense.Category] = len(totals)
			totals = append(totals, &CategoryTotal{Category: expense.Category, Total: decimal.Zero})
			i = index[expense.Category]
		}
		totals[i].Total = totals[i].Total.Add(expense.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	if len(totals) > insightTopN {
		totals = totals[:insightTopN]
	}
	return totals, nil
}

// MonthlyTrend returns per-month totals for the most recent months
// present in the data, ascending chronologically
func (s *insightService) MonthlyTrend(ctx context.Context) ([]*MonthlyTotal, error) {
	byMonth := make(map[string]decimal.Decimal)
	for _, expense := range s.client.expenses.List(ctx) {
		key := expense.Date.MonthKey()
		byMonth[key] = byMonth[key].Add(expense.Amount)
	}

	months := make([]string, 0, len(byMonth))
	for key := range byMonth {
		months = append(months, key)
	}
	// Lexicographic YYYY-MM order is chronological order
	sort.Strings(months)

	if len(months) > trendMonths {
		months = months[len(months)-trendMonths:]
	}

	trend := make([]*MonthlyTotal, 0, len(months))
	for _, key := range months {
		trend = append(trend, &MonthlyTotal{Month: key, Total: byMonth[key]})
	}
	return trend, nil
}

// TopExpenses returns the largest expenses, descending by amount
func (s *insightService) TopExpenses(ctx context.Context) ([]*Expense, error) {
	ranked := s.client.expenses.List(ctx)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if len(ranked) > insightTopN {
		ranked = ranked[:insightTopN]
	}
	return ranked, nil
}

// DailyAverage returns total spend over the day span of the expense set
func (s *insightService) DailyAverage(ctx context.Context) (decimal.Decimal, error) {
	expenses := s.client.expenses.List(ctx)
	if len(expenses) == 0 {
		return decimal.Zero, nil
	}

	minDate := expenses[0].Date
	maxDate := expenses[0].Date
	total := decimal.Zero
	for _, expense := range expenses {
		if expense.Date.Before(minDate.Time) {
			minDate = expense.Date
		}
		if expense.Date.After(maxDate.Time) {
			maxDate = expense.Date
		}
		total = total.Add(expense.Amount)
	}

	// A single-day dataset divides by the one-day floor
	days := int64(math.Ceil(maxDate.Sub(minDate.Time).Hours() / 24))
	if days < 1 {
		days = 1
	}

	return total.Div(decimal.NewFromInt(days)), nil
}

// Key returns the headline insight roll-up
func (s *insightService) Key(ctx context.Context) (*KeyInsights, error) {
	expenses := s.client.expenses.List(ctx)

	insights := &KeyInsights{
		DailyAverage: decimal.Zero,
		Total:        decimal.Zero,
		Count:        len(expenses),
	}
	for _, expense := range expenses {
		insights.Total = insights.Total.Add(expense.Amount)
	}

	categories, err := s.CategoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		insights.BiggestCategory = categories[0].Category
		insights.BiggestTotal = categories[0].Total
	} else {
		insights.BiggestTotal = decimal.Zero
	}

	top, err := s.TopExpenses(ctx)
	if err != nil {
		return nil, err
	}
	if len(top) > 0 {
		insights.LargestExpense = top[0]
	}

	average, err := s.DailyAverage(ctx)
	if err != nil {
		return nil, err
	}
	insights.DailyAverage = average

	return insights, nil
}
