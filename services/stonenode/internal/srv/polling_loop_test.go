package srv

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingMetrics struct {
	mu     sync.Mutex
	errors map[string]int
}

func (m *countingMetrics) RecordError(_ context.Context, loop string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errors == nil {
		m.errors = make(map[string]int)
	}
	m.errors[loop]++
}

func (m *countingMetrics) count(loop string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[loop]
}

func runLoop(ctx context.Context, t *testing.T, loop *PollingLoop) <-chan error {
	t.Helper()

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- loop.Run(ctx, started)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("polling loop did not start")
	}
	return done
}

func newLoop(singleTask bool, metrics LoopMetrics, action PollAction) PollingLoop {
	config := NewPollingLoopConfig("task_executor", 10*time.Millisecond, singleTask, action)
	return NewPollingLoop(config, metrics, logging.NewLogger("polling_loop_test"))
}

func TestPollingLoop_Runs_Until_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var polls atomic.Int32
	loop := newLoop(false, NewNoopLoopMetrics(), func(context.Context) (bool, error) {
		polls.Add(1)
		return true, nil
	})
	require.Equal(t, "task_executor", loop.Name())

	done := runLoop(ctx, t, &loop)

	require.Eventually(t, func() bool { return polls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestPollingLoop_Errors_Are_Recorded(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := &countingMetrics{}
	loop := newLoop(false, metrics, func(context.Context) (bool, error) {
		return false, errors.New("orchestrator is unavailable")
	})

	done := runLoop(ctx, t, &loop)

	require.Eventually(t, func() bool { return metrics.count("task_executor") >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestPollingLoop_Stops_When_Action_Is_Cancelled(t *testing.T) {
	t.Parallel()

	config := NewPollingLoopConfig("task_executor", time.Hour, false, func(context.Context) (bool, error) {
		return true, context.Canceled
	})
	loop := NewPollingLoop(config, NewNoopLoopMetrics(), logging.NewLogger("polling_loop_test"))

	done := runLoop(context.Background(), t, &loop)
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestPollingLoop_Single_Task_Returns_First_Outcome(t *testing.T) {
	t.Parallel()

	taskErr := errors.New("prover exited with code 1")
	var polls atomic.Int32
	metrics := &countingMetrics{}
	loop := newLoop(true, metrics, func(context.Context) (bool, error) {
		if polls.Add(1) < 3 {
			return false, nil
		}
		return true, taskErr
	})

	done := runLoop(context.Background(), t, &loop)
	require.ErrorIs(t, <-done, taskErr)
	require.Equal(t, int32(3), polls.Load())
	require.Zero(t, metrics.count("task_executor"), "single task errors are returned, not counted")
}

func TestPollingLoop_Single_Task_Returns_Poll_Error(t *testing.T) {
	t.Parallel()

	pollErr := errors.New("orchestrator is unavailable")
	loop := newLoop(true, NewNoopLoopMetrics(), func(context.Context) (bool, error) {
		return false, pollErr
	})

	done := runLoop(context.Background(), t, &loop)
	require.ErrorIs(t, <-done, pollErr)
}

func TestPollingLoop_Single_Task_Stops_On_Deadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	loop := newLoop(true, NewNoopLoopMetrics(), func(context.Context) (bool, error) {
		return false, nil
	})

	done := runLoop(ctx, t, &loop)
	require.ErrorIs(t, <-done, context.DeadlineExceeded)
}
