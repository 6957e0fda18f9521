package ledger

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocketledger-go/internal/idgen"
)

// goalService implements the GoalService interface
type goalService struct {
	client *Client
}

// Add stores a new goal. The current amount always starts at zero and
// only grows through explicit contributions.
func (s *goalService) Add(ctx context.Context, params *CreateGoalParams) (*SavingsGoal, error) {
	var created *SavingsGoal

	err := s.client.instrument(ctx, "goals.add", func() error {
		if err := validateGoalFields(params.Title, params.TargetAmount, params.TargetDate); err != nil {
			return err
		}

		created = &SavingsGoal{
			ID:            idgen.New(),
			Title:         strings.TrimSpace(params.Title),
			TargetAmount:  params.TargetAmount,
			CurrentAmount: decimal.Zero,
			TargetDate:    params.TargetDate,
			Description:   params.Description,
		}
		s.client.goals.Insert(ctx, created)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add savings goal")
	}

	return created, nil
}

// Update replaces the goal with a matching id; unknown ids no-op.
// Edits preserve whatever CurrentAmount the caller carries over.
func (s *goalService) Update(ctx context.Context, goal *SavingsGoal) error {
	err := s.client.instrument(ctx, "goals.update", func() error {
		if err := validateGoalFields(goal.Title, goal.TargetAmount, goal.TargetDate); err != nil {
			return err
		}

		s.client.goals.Replace(ctx, goal)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update savings goal")
	}
	return nil
}

// Delete removes the goal with the matching id; no-op if absent
func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.client.instrument(ctx, "goals.delete", func() error {
		s.client.goals.Remove(ctx, id)
		s.client.session.clearContribution(id)
		return nil
	})
}

// Get retrieves a single goal
func (s *goalService) Get(ctx context.Context, id string) (*SavingsGoal, error) {
	goal, ok := s.client.goals.Get(ctx, id)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "savings goal %s", id)
	}
	return goal, nil
}

// List returns all goals in creation order
func (s *goalService) List(ctx context.Context) ([]*SavingsGoal, error) {
	return s.client.goals.List(ctx), nil
}

// Contribute adds amount to the goal's current amount. Exceeding the
// target is permitted and keeps the goal completed.
func (s *goalService) Contribute(ctx context.Context, id string, amount decimal.Decimal) error {
	err := s.client.instrument(ctx, "goals.contribute", func() error {
		if !amount.IsPositive() {
			return invalidField("amount", "contribution must be positive", amount.String())
		}

		goal, ok := s.client.goals.Get(ctx, id)
		if !ok {
			return nil
		}

		updated := *goal
		updated.CurrentAmount = goal.CurrentAmount.Add(amount)
		s.client.goals.Replace(ctx, &updated)
		s.client.session.clearContribution(id)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to contribute to savings goal")
	}
	return nil
}

// Progress computes completion state for every goal
func (s *goalService) Progress(ctx context.Context) ([]*GoalProgress, error) {
	now := s.client.now()

	goals := s.client.goals.List(ctx)
	progress := make([]*GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, evaluateGoal(goal, now))
	}
	return progress, nil
}

// evaluateGoal derives one goal's progress at the given instant.
// Display priority for the caller: completed beats overdue beats the
// on-track countdown.
func evaluateGoal(goal *SavingsGoal, now time.Time) *GoalProgress {
	var percentage float64
	if goal.TargetAmount.IsZero() {
		// A zero target is treated as already met
		percentage = 100
	} else {
		percentage = goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	completed := goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)

	daysRemaining := int(math.Ceil(goal.TargetDate.Sub(now).Hours() / 24))

	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &GoalProgress{
		Goal:          goal,
		Percentage:    percentage,
		IsCompleted:   completed,
		DaysRemaining: daysRemaining,
		IsOverdue:     daysRemaining < 0 && !completed,
		Remaining:     remaining,
	}
}
