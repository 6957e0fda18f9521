package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addExpense(t *testing.T, client *Client, title, amount string, category Category, date, description string) *Expense {
	t.Helper()

	expense, err := client.Expenses.Add(context.Background(), &CreateExpenseParams{
		Title:       title,
		Amount:      mustDecimal(amount),
		Category:    category,
		Date:        MustParseDate(date),
		Description: description,
	})
	require.NoError(t, err)
	return expense
}

func TestExpenseService_AddPrependsNewestFirst(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	first := addExpense(t, client, "First", "10.00", CategoryFood, "2025-06-01", "")
	second := addExpense(t, client, "Second", "20.00", CategoryRent, "2025-06-02", "")

	expenses, err := client.Expenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, second.ID, expenses[0].ID)
	assert.Equal(t, first.ID, expenses[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestExpenseService_CRUDReplay(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	a := addExpense(t, client, "Coffee", "4.50", CategoryFood, "2025-06-01", "")
	b := addExpense(t, client, "Taxi", "18.00", CategoryTransport, "2025-06-02", "")
	c := addExpense(t, client, "Cinema", "12.00", CategoryEntertainment, "2025-06-03", "")

	edited := *b
	edited.Title = "Taxi to airport"
	edited.Amount = mustDecimal("25.00")
	require.NoError(t, client.Expenses.Update(ctx, &edited))

	require.NoError(t, client.Expenses.Delete(ctx, a.ID))

	expenses, err := client.Expenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, c.ID, expenses[0].ID)
	assert.Equal(t, b.ID, expenses[1].ID)
	assert.Equal(t, "Taxi to airport", expenses[1].Title)
	assert.Equal(t, "25", expenses[1].Amount.String())
}

func TestExpenseService_UpdateUnknownIDIsNoOp(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	existing := addExpense(t, client, "Coffee", "4.50", CategoryFood, "2025-06-01", "")

	ghost := *existing
	ghost.ID = "does-not-exist"
	ghost.Title = "Phantom"
	require.NoError(t, client.Expenses.Update(ctx, &ghost))

	expenses, err := client.Expenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Coffee", expenses[0].Title)
}

func TestExpenseService_DeleteUnknownIDIsNoOp(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	addExpense(t, client, "Coffee", "4.50", CategoryFood, "2025-06-01", "")

	require.NoError(t, client.Expenses.Delete(ctx, "does-not-exist"))

	expenses, err := client.Expenses.List(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestExpenseService_RoundTrip(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	added := addExpense(t, client, "Groceries", "85.50", CategoryFood, "2025-06-10", "weekly shop")

	// Updating with an unchanged payload leaves a deep-equal record
	unchanged := *added
	require.NoError(t, client.Expenses.Update(ctx, &unchanged))

	stored, err := client.Expenses.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, stored)
}

func TestExpenseService_GetUnknownID(t *testing.T) {
	client := newTestClient(t, EmptySeed())

	_, err := client.Expenses.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseService_DeleteClearsEditSession(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	editing := addExpense(t, client, "Editing me", "5.00", CategoryOther, "2025-06-01", "")
	other := addExpense(t, client, "Leave me", "6.00", CategoryOther, "2025-06-02", "")

	client.Session().StartEdit(editing.ID)

	// Deleting an unrelated expense keeps the edit reference
	require.NoError(t, client.Expenses.Delete(ctx, other.ID))
	assert.Equal(t, editing.ID, client.Session().EditingExpenseID())

	// Deleting the expense under edit clears it
	require.NoError(t, client.Expenses.Delete(ctx, editing.ID))
	assert.Empty(t, client.Session().EditingExpenseID())
}

func TestExpenseService_AddValidation(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	_, err := client.Expenses.Add(ctx, &CreateExpenseParams{
		Title:    "  ",
		Amount:   mustDecimal("1.00"),
		Category: CategoryFood,
		Date:     MustParseDate("2025-06-01"),
	})
	assert.True(t, IsValidation(err), "blank title should be rejected")

	_, err = client.Expenses.Add(ctx, &CreateExpenseParams{
		Title:    "Refund",
		Amount:   mustDecimal("-5.00"),
		Category: CategoryFood,
		Date:     MustParseDate("2025-06-01"),
	})
	assert.True(t, IsValidation(err), "negative amount should be rejected")

	_, err = client.Expenses.Add(ctx, &CreateExpenseParams{
		Title:    "Typo",
		Amount:   mustDecimal("5.00"),
		Category: Category("Fod"),
		Date:     MustParseDate("2025-06-01"),
	})
	assert.True(t, IsValidation(err), "unknown category should be rejected")

	expenses, err := client.Expenses.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenseService_FilterNoFilterReturnsAllInOrder(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	addExpense(t, client, "Coffee", "4.50", CategoryFood, "2025-06-01", "")
	addExpense(t, client, "Taxi", "18.00", CategoryTransport, "2025-06-02", "")
	addExpense(t, client, "Cinema", "12.00", CategoryEntertainment, "2025-06-03", "")

	all, err := client.Expenses.List(ctx)
	require.NoError(t, err)

	filtered, err := client.Expenses.Filter(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, all, filtered)
}

func TestExpenseService_FilterPredicate(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	addExpense(t, client, "Grocery Shopping", "85.50", CategoryFood, "2025-06-01", "weekly supermarket run")
	addExpense(t, client, "Monthly Rent", "1200.00", CategoryRent, "2025-06-01", "")
	addExpense(t, client, "Dinner Out", "42.00", CategoryFood, "2025-06-05", "birthday dinner")

	// Case-insensitive title match
	matched, err := client.Expenses.Filter(ctx, "GROCERY", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Grocery Shopping", matched[0].Title)

	// Description match
	matched, err = client.Expenses.Filter(ctx, "birthday", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Dinner Out", matched[0].Title)

	// Category narrows the search
	matched, err = client.Expenses.Filter(ctx, "", CategoryFood)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	for _, expense := range matched {
		assert.Equal(t, CategoryFood, expense.Category)
	}

	// Both together
	matched, err = client.Expenses.Filter(ctx, "dinner", CategoryFood)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Dinner Out", matched[0].Title)

	// No hits is a valid, empty result
	matched, err = client.Expenses.Filter(ctx, "yacht", "")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestExpenseService_FilterPreservesOrder(t *testing.T) {
	client := newTestClient(t, EmptySeed())
	ctx := context.Background()

	addExpense(t, client, "Lunch A", "10.00", CategoryFood, "2025-06-01", "")
	addExpense(t, client, "Taxi", "18.00", CategoryTransport, "2025-06-02", "")
	addExpense(t, client, "Lunch B", "11.00", CategoryFood, "2025-06-03", "")

	matched, err := client.Expenses.Filter(ctx, "lunch", "")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Lunch B", matched[0].Title)
	assert.Equal(t, "Lunch A", matched[1].Title)
}

func TestExpenseService_FilterWritesSession(t *testing.T) {
	client := newTestClient(t, EmptySeed())

	_, err := client.Expenses.Filter(context.Background(), "rent", CategoryRent)
	require.NoError(t, err)

	assert.Equal(t, "rent", client.Session().SearchTerm())
	assert.Equal(t, CategoryRent, client.Session().SelectedCategory())
}
