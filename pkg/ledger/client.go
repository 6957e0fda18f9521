package ledger

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/pocketledger/pocketledger-go/internal/store"
)

// Client is the entry point to the tracker. It owns the in-memory
// record store and the interactive session, and exposes one service
// per domain. All state is process-lifetime only.
type Client struct {
	// Service interfaces
	Expenses  ExpenseService
	Budgets   BudgetService
	Recurring RecurringService
	Goals     GoalService
	Insights  InsightService
	Summary   SummaryService

	// Internal fields
	expenses  *store.Collection[*Expense]
	budgets   *store.Collection[*Budget]
	recurring *store.Collection[*RecurringExpense]
	goals     *store.Collection[*SavingsGoal]

	session       *Session
	options       *ClientOptions
	clock         func() time.Time
	sentryEnabled bool
}

// ClientOptions configures the client
type ClientOptions struct {
	// Logger for debug logging
	Logger Logger

	// Hooks for observability
	Hooks *Hooks

	// Clock overrides the time source used for current-month budget
	// evaluation, goal countdowns, and the monthly summary total.
	// Defaults to time.Now.
	Clock func() time.Time

	// Seed is the dataset loaded at startup. Nil loads the demo
	// fixture; use EmptySeed() for a blank store.
	Seed *Seed

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Hooks provides lifecycle hooks around mutations
type Hooks struct {
	// OnMutation runs after every attempted mutation with its duration
	OnMutation func(ctx context.Context, operation string, duration time.Duration)

	// OnError runs after a mutation is rejected
	OnError func(ctx context.Context, operation string, err error)
}

// noopLogger discards everything
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// NewClient creates a tracker client seeded per the options
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	sentryEnabled := false
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		} else {
			sentryEnabled = true
		}
	}

	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	c := &Client{
		expenses:      store.NewCollection[*Expense](store.Front),
		budgets:       store.NewCollection[*Budget](store.Back),
		recurring:     store.NewCollection[*RecurringExpense](store.Back),
		goals:         store.NewCollection[*SavingsGoal](store.Back),
		session:       NewSession(),
		options:       opts,
		clock:         clock,
		sentryEnabled: sentryEnabled,
	}

	c.initServices()

	seed := opts.Seed
	if seed == nil {
		seed = DefaultSeed()
	}
	c.applySeed(seed)

	return c, nil
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Expenses = &expenseService{client: c}
	c.Budgets = &budgetService{client: c}
	c.Recurring = &recurringService{client: c}
	c.Goals = &goalService{client: c}
	c.Insights = &insightService{client: c}
	c.Summary = &summaryService{client: c}
}

// Session returns the interactive session state
func (c *Client) Session() *Session {
	return c.session
}

// now returns the injected clock's current time
func (c *Client) now() time.Time {
	return c.clock()
}

// instrument wraps a mutation with hooks, logging, and error capture
func (c *Client) instrument(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start)

	if c.options.Hooks != nil && c.options.Hooks.OnMutation != nil {
		c.options.Hooks.OnMutation(ctx, operation, duration)
	}

	if err != nil {
		c.options.Logger.Warn("mutation rejected", "operation", operation, "error", err)
		c.captureError(ctx, operation, err)
		if c.options.Hooks != nil && c.options.Hooks.OnError != nil {
			c.options.Hooks.OnError(ctx, operation, err)
		}
		return err
	}

	c.options.Logger.Debug("mutation applied", "operation", operation, "duration", duration)
	return nil
}

// captureError reports a rejected mutation to Sentry when configured
func (c *Client) captureError(ctx context.Context, operation string, err error) {
	if !c.sentryEnabled {
		return
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("ledger.operation", operation)
			hub.CaptureException(err)
		})
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("ledger.operation", operation)
		sentry.CaptureException(err)
	})
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	if c.sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}
