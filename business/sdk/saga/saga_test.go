package saga_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hudsor01/tenantflow/business/sdk/saga"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/stretchr/testify/require"
)

func newTestLog() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
}

// countingStep builds a step that tracks how many times its execute and
// compensate functions ran.
type counters struct {
	executed    int
	compensated int
}

func okStep(name string, c *counters) saga.Step {
	return saga.NewStep(name,
		func(ctx context.Context) (string, error) {
			c.executed++
			return name + "-result", nil
		},
		func(ctx context.Context, result string) error {
			c.compensated++
			return nil
		})
}

func failStep(name string, c *counters, err error) saga.Step {
	return saga.NewStep(name,
		func(ctx context.Context) (string, error) {
			c.executed++
			return "", err
		},
		func(ctx context.Context, result string) error {
			c.compensated++
			return nil
		})
}

func Test_AllStepsSucceed(t *testing.T) {
	ctx := context.Background()

	var a, b, c counters
	result := saga.New(newTestLog()).
		AddStep(okStep("a", &a)).
		AddStep(okStep("b", &b)).
		AddStep(okStep("c", &c)).
		Execute(ctx)

	require.True(t, result.Success)
	require.NoError(t, result.Err)
	require.Equal(t, []string{"a", "b", "c"}, result.CompletedSteps)
	require.Empty(t, result.CompensatedSteps)

	require.Equal(t, 1, a.executed)
	require.Equal(t, 1, b.executed)
	require.Equal(t, 1, c.executed)
	require.Equal(t, 0, a.compensated)
	require.Equal(t, 0, b.compensated)
	require.Equal(t, 0, c.compensated)
}

func Test_FailureStopsForwardExecution(t *testing.T) {
	ctx := context.Background()

	boom := errors.New("step b failed")

	var a, b, c, d counters
	result := saga.New(newTestLog()).
		AddStep(okStep("a", &a)).
		AddStep(failStep("b", &b, boom)).
		AddStep(okStep("c", &c)).
		AddStep(okStep("d", &d)).
		Execute(ctx)

	require.False(t, result.Success)
	require.ErrorIs(t, result.Err, boom)

	require.Equal(t, []string{"a"}, result.CompletedSteps)
	require.Equal(t, []string{"a"}, result.CompensatedSteps)

	// Steps after the failing one never run.
	require.Equal(t, 0, c.executed)
	require.Equal(t, 0, d.executed)

	// The failing step is never compensated for itself.
	require.Equal(t, 0, b.compensated)
	require.Equal(t, 1, a.compensated)
}

func Test_CompensationRunsInReverseOrder(t *testing.T) {
	ctx := context.Background()

	var a, b, c, d counters
	result := saga.New(newTestLog()).
		AddStep(okStep("a", &a)).
		AddStep(okStep("b", &b)).
		AddStep(okStep("c", &c)).
		AddStep(failStep("d", &d, errors.New("step d failed"))).
		Execute(ctx)

	require.False(t, result.Success)
	require.Equal(t, []string{"a", "b", "c"}, result.CompletedSteps)
	require.Equal(t, []string{"c", "b", "a"}, result.CompensatedSteps)
}

func Test_CompensationFailureDoesNotMaskError(t *testing.T) {
	ctx := context.Background()

	trigger := errors.New("the trigger error")

	var aCompensated, cCompensated bool

	stepA := saga.NewStep("a",
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context, result int) error {
			aCompensated = true
			return nil
		})

	stepB := saga.NewStep("b",
		func(ctx context.Context) (int, error) { return 2, nil },
		func(ctx context.Context, result int) error {
			return errors.New("compensation blew up")
		})

	stepC := saga.NewStep("c",
		func(ctx context.Context) (int, error) { return 3, nil },
		func(ctx context.Context, result int) error {
			cCompensated = true
			return nil
		})

	stepD := saga.NewStep("d",
		func(ctx context.Context) (int, error) { return 0, trigger },
		nil)

	result := saga.New(newTestLog()).
		AddStep(stepA).
		AddStep(stepB).
		AddStep(stepC).
		AddStep(stepD).
		Execute(ctx)

	// The reported error stays the trigger error even though b's
	// compensation failed, and a still gets compensated after b.
	require.ErrorIs(t, result.Err, trigger)
	require.Equal(t, []string{"c", "b", "a"}, result.CompensatedSteps)
	require.True(t, aCompensated)
	require.True(t, cCompensated)
}

func Test_CompensateReceivesExecuteResult(t *testing.T) {
	ctx := context.Background()

	type created struct {
		ID string
	}

	var got created

	stepA := saga.NewStep("create",
		func(ctx context.Context) (created, error) {
			return created{ID: "rec-42"}, nil
		},
		func(ctx context.Context, result created) error {
			got = result
			return nil
		})

	stepB := saga.NewStep("fail",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, errors.New("forced")
		},
		nil)

	result := saga.New(newTestLog()).
		AddStep(stepA).
		AddStep(stepB).
		Execute(ctx)

	require.False(t, result.Success)
	require.Equal(t, "rec-42", got.ID)
}

func Test_ReadOnlyStepHasNoCompensation(t *testing.T) {
	ctx := context.Background()

	readOnly := saga.NewStep("check",
		func(ctx context.Context) (struct{}, error) { return struct{}{}, nil },
		nil)

	result := saga.New(newTestLog()).
		AddStep(readOnly).
		AddStep(saga.NewStep("fail",
			func(ctx context.Context) (struct{}, error) {
				return struct{}{}, errors.New("forced")
			},
			nil)).
		Execute(ctx)

	require.False(t, result.Success)

	// The read-only step still shows up in the compensated list since its
	// Compensate was invoked, it just has nothing to undo.
	require.Equal(t, []string{"check"}, result.CompensatedSteps)
}

func Test_EmptySagaSucceeds(t *testing.T) {
	result := saga.New(newTestLog()).Execute(context.Background())

	require.True(t, result.Success)
	require.Empty(t, result.CompletedSteps)
	require.Empty(t, result.CompensatedSteps)
}
