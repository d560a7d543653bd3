// Package saga provides a small in-process runner for an ordered list of
// steps, each with a forward action and a compensating action. On the first
// forward failure the already completed steps are compensated in reverse
// order, best effort, and the triggering error is reported unchanged.
//
// The runner keeps no durable state. A saga is built per invocation, runs
// synchronously within the calling request and is discarded afterwards.
// Retry policy, if any, belongs to the caller around the whole saga.
package saga

import (
	"context"

	"github.com/hudsor01/tenantflow/foundation/logger"
)

// Step represents a named unit of work inside a saga. Execute performs the
// forward action. Compensate rolls the forward action back and is only called
// for steps whose Execute returned nil.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// step binds a typed execute/compensate pair. The value produced by execute
// is retained so compensate receives the exact payload its forward action
// created.
type step[T any] struct {
	name       string
	execute    func(ctx context.Context) (T, error)
	compensate func(ctx context.Context, result T) error
	result     T
}

// NewStep constructs a step from a typed execute/compensate pair. A nil
// compensate function marks the step as read-only: nothing runs on rollback.
func NewStep[T any](name string, execute func(ctx context.Context) (T, error), compensate func(ctx context.Context, result T) error) Step {
	return &step[T]{
		name:       name,
		execute:    execute,
		compensate: compensate,
	}
}

// Name returns the name of the step.
func (s *step[T]) Name() string {
	return s.name
}

// Execute runs the forward action and retains its result for compensation.
func (s *step[T]) Execute(ctx context.Context) error {
	result, err := s.execute(ctx)
	if err != nil {
		return err
	}

	s.result = result

	return nil
}

// Compensate rolls back the forward action, passing it the retained result.
func (s *step[T]) Compensate(ctx context.Context) error {
	if s.compensate == nil {
		return nil
	}

	return s.compensate(ctx, s.result)
}

// =============================================================================

// Result reports the outcome of a saga run.
type Result struct {
	Success          bool
	CompletedSteps   []string
	CompensatedSteps []string
	Err              error
}

// Saga runs an ordered list of steps to completion or rolls back cleanly on
// the first failure.
type Saga struct {
	log   *logger.Logger
	steps []Step
}

// New constructs a saga ready to have steps added.
func New(log *logger.Logger) *Saga {
	return &Saga{
		log: log,
	}
}

// AddStep appends one step to the saga. Returns the saga for chaining.
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Execute runs the steps strictly in the order they were added. On the first
// step whose Execute fails, forward execution stops, the completed steps are
// compensated most recently completed first, and the result carries the
// triggering error. Compensation failures are logged and never replace the
// triggering error or abort compensation of earlier steps.
func (s *Saga) Execute(ctx context.Context) Result {
	completed := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		s.log.Info(ctx, "saga.step", "status", "executing", "step", step.Name())

		if err := step.Execute(ctx); err != nil {
			s.log.Error(ctx, "saga.step", "status", "failed", "step", step.Name(), "err", err)

			return Result{
				Success:          false,
				CompletedSteps:   stepNames(completed),
				CompensatedSteps: s.rollback(ctx, completed),
				Err:              err,
			}
		}

		completed = append(completed, step)
	}

	return Result{
		Success:          true,
		CompletedSteps:   stepNames(completed),
		CompensatedSteps: []string{},
	}
}

// rollback compensates the completed steps in reverse order. Best effort: a
// compensation error is logged with the step name for manual remediation and
// the remaining earlier steps are still compensated.
func (s *Saga) rollback(ctx context.Context, completed []Step) []string {
	compensated := make([]string, 0, len(completed))

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]

		s.log.Info(ctx, "saga.compensate", "status", "compensating", "step", step.Name())

		if err := step.Compensate(ctx); err != nil {
			s.log.Error(ctx, "saga.compensate", "status", "failed", "step", step.Name(), "err", err)
		}

		compensated = append(compensated, step.Name())
	}

	return compensated
}

func stepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Name()
	}

	return names
}
