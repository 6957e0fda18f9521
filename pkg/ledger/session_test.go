package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_FilterState(t *testing.T) {
	session := NewSession()

	assert.Empty(t, session.SearchTerm())
	assert.Empty(t, session.SelectedCategory())

	session.SetSearchTerm("rent")
	session.SetCategory(CategoryRent)
	assert.Equal(t, "rent", session.SearchTerm())
	assert.Equal(t, CategoryRent, session.SelectedCategory())

	session.SetSearchTerm("")
	session.SetCategory("")
	assert.Empty(t, session.SearchTerm())
	assert.Empty(t, session.SelectedCategory())
}

func TestSession_EditLifecycle(t *testing.T) {
	session := NewSession()

	session.StartEdit("exp-1")
	assert.Equal(t, "exp-1", session.EditingExpenseID())

	// Clearing a different id is a no-op
	session.clearEditingIf("exp-2")
	assert.Equal(t, "exp-1", session.EditingExpenseID())

	session.clearEditingIf("exp-1")
	assert.Empty(t, session.EditingExpenseID())

	session.StartEdit("exp-3")
	session.CancelEdit()
	assert.Empty(t, session.EditingExpenseID())
}

func TestSession_ContributionBuffers(t *testing.T) {
	session := NewSession()

	session.SetContributionInput("goal-1", "250")
	session.SetContributionInput("goal-2", "75.50")

	assert.Equal(t, "250", session.ContributionInput("goal-1"))
	assert.Equal(t, "75.50", session.ContributionInput("goal-2"))

	session.clearContribution("goal-1")
	assert.Empty(t, session.ContributionInput("goal-1"))
	assert.Equal(t, "75.50", session.ContributionInput("goal-2"))
}

func TestCategory_ParseAndValidate(t *testing.T) {
	for _, category := range Categories() {
		parsed, err := ParseCategory(string(category))
		assert.NoError(t, err)
		assert.Equal(t, category, parsed)
	}

	_, err := ParseCategory("Groceries")
	assert.Error(t, err)

	assert.False(t, Category("").Valid())
	assert.Len(t, Categories(), 8)
}
