package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Precondition checks on creation and update paths. The calling layer
// is expected to reject bad input before invoking the tracker; these
// checks make that contract explicit instead of trusting it. Unknown-id
// update/delete stays a silent no-op.

func validateExpenseFields(title string, amount decimal.Decimal, category Category, date Date) error {
	if strings.TrimSpace(title) == "" {
		return invalidField("title", "title is required", title)
	}
	if amount.IsNegative() {
		return invalidField("amount", "amount must not be negative", amount.String())
	}
	if !category.Valid() {
		return invalidField("category", "unknown category", string(category))
	}
	if date.IsZero() {
		return invalidField("date", "date is required", nil)
	}
	return nil
}

func validateBudgetFields(category Category, amount decimal.Decimal, month string) error {
	if !category.Valid() {
		return invalidField("category", "unknown category", string(category))
	}
	if amount.IsNegative() {
		return invalidField("amount", "amount must not be negative", amount.String())
	}
	if !ValidMonthKey(month) {
		return invalidField("month", "month must be YYYY-MM", month)
	}
	return nil
}

func validateRecurringFields(title string, amount decimal.Decimal, category Category, dayOfMonth int) error {
	if strings.TrimSpace(title) == "" {
		return invalidField("title", "title is required", title)
	}
	if amount.IsNegative() {
		return invalidField("amount", "amount must not be negative", amount.String())
	}
	if !category.Valid() {
		return invalidField("category", "unknown category", string(category))
	}
	// Capped at 28 so the template stays valid in every month
	if dayOfMonth < 1 || dayOfMonth > 28 {
		return invalidField("dayOfMonth", "dayOfMonth must be between 1 and 28", dayOfMonth)
	}
	return nil
}

func validateGoalFields(title string, targetAmount decimal.Decimal, targetDate Date) error {
	if strings.TrimSpace(title) == "" {
		return invalidField("title", "title is required", title)
	}
	if targetAmount.IsNegative() {
		return invalidField("targetAmount", "targetAmount must not be negative", targetAmount.String())
	}
	if targetDate.IsZero() {
		return invalidField("targetDate", "targetDate is required", nil)
	}
	return nil
}
