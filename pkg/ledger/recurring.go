package ledger

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/pocketledger/pocketledger-go/internal/idgen"
)

// recurringService implements the RecurringService interface
type recurringService struct {
	client *Client
}

// Add stores a new recurring template
func (s *recurringService) Add(ctx context.Context, params *CreateRecurringParams) (*RecurringExpense, error) {
	var created *RecurringExpense

	err := s.client.instrument(ctx, "recurring.add", func() error {
		if err := validateRecurringFields(params.Title, params.Amount, params.Category, params.DayOfMonth); err != nil {
			return err
		}

		created = &RecurringExpense{
			ID:          idgen.New(),
			Title:       strings.TrimSpace(params.Title),
			Amount:      params.Amount,
			Category:    params.Category,
			DayOfMonth:  params.DayOfMonth,
			Description: params.Description,
			IsActive:    params.IsActive,
		}
		s.client.recurring.Insert(ctx, created)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add recurring expense")
	}

	return created, nil
}

// Update replaces the template with a matching id; unknown ids no-op
func (s *recurringService) Update(ctx context.Context, recurring *RecurringExpense) error {
	err := s.client.instrument(ctx, "recurring.update", func() error {
		if err := validateRecurringFields(recurring.Title, recurring.Amount, recurring.Category, recurring.DayOfMonth); err != nil {
			return err
		}

		s.client.recurring.Replace(ctx, recurring)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update recurring expense")
	}
	return nil
}

// Delete removes the template with the matching id; no-op if absent
func (s *recurringService) Delete(ctx context.Context, id string) error {
	return s.client.instrument(ctx, "recurring.delete", func() error {
		s.client.recurring.Remove(ctx, id)
		return nil
	})
}

// Get retrieves a single template
func (s *recurringService) Get(ctx context.Context, id string) (*RecurringExpense, error) {
	recurring, ok := s.client.recurring.Get(ctx, id)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "recurring expense %s", id)
	}
	return recurring, nil
}

// List returns all templates in creation order
func (s *recurringService) List(ctx context.Context) ([]*RecurringExpense, error) {
	return s.client.recurring.List(ctx), nil
}

// ToggleActive flips the template's active flag. Toggling never creates
// or deletes expense records; it only changes the template's status.
func (s *recurringService) ToggleActive(ctx context.Context, id string) error {
	return s.client.instrument(ctx, "recurring.toggle", func() error {
		recurring, ok := s.client.recurring.Get(ctx, id)
		if !ok {
			return nil
		}

		toggled := *recurring
		toggled.IsActive = !recurring.IsActive
		s.client.recurring.Replace(ctx, &toggled)
		return nil
	})
}
