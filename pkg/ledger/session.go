package ledger

import "sync"

// Session holds the per-session interactive state the presentation
// layer would otherwise keep ambiently: the search term, the selected
// category filter, the expense currently open for editing, and raw
// contribution input buffers keyed by goal id. Its lifetime is the
// client's.
type Session struct {
	mu            sync.Mutex
	searchTerm    string
	category      Category
	editingID     string
	contributions map[string]string
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{contributions: make(map[string]string)}
}

// SetSearchTerm records the free-text filter input
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// SearchTerm returns the current free-text filter input
func (s *Session) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// SetCategory records the category filter selection. Empty means all.
func (s *Session) SetCategory(c Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = c
}

// SelectedCategory returns the current category filter selection
func (s *Session) SelectedCategory() Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// StartEdit marks an expense as open for editing
func (s *Session) StartEdit(expenseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = expenseID
}

// CancelEdit clears the edit reference
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = ""
}

// EditingExpenseID returns the id of the expense open for editing, or
// empty when none is
func (s *Session) EditingExpenseID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

// clearEditingIf drops the edit reference when it points at id
func (s *Session) clearEditingIf(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID == id {
		s.editingID = ""
	}
}

// SetContributionInput records the raw contribution input for a goal
func (s *Session) SetContributionInput(goalID, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributions[goalID] = raw
}

// ContributionInput returns the raw contribution input for a goal
func (s *Session) ContributionInput(goalID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contributions[goalID]
}

// clearContribution drops the input buffer for a goal
func (s *Session) clearContribution(goalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contributions, goalID)
}
