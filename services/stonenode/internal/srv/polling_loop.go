package srv

import (
	"context"
	"errors"
	"time"

	"github.com/NilFoundation/stone/common/logging"
)

// PollAction asks for one task and handles it if there is one.
// handled is true iff a task was received, whatever the outcome of handling it.
type PollAction = func(ctx context.Context) (handled bool, err error)

type PollingLoopConfig struct {
	Name     string
	Interval time.Duration
	// SingleTask makes Run return the outcome of the first handled task.
	// Any error before that task is returned too.
	SingleTask bool
	Action     PollAction
}

func NewPollingLoopConfig(name string, interval time.Duration, singleTask bool, action PollAction) PollingLoopConfig {
	return PollingLoopConfig{
		Name:       name,
		Interval:   interval,
		SingleTask: singleTask,
		Action:     action,
	}
}

type LoopMetrics interface {
	RecordError(ctx context.Context, loop string)
}

// PollingLoop runs Action right away and then on every Interval tick.
// Without SingleTask, Action errors are logged and counted and only cancellation stops the loop.
type PollingLoop struct {
	config  PollingLoopConfig
	metrics LoopMetrics
	Logger  logging.Logger
}

var _ Worker = (*PollingLoop)(nil)

func NewPollingLoop(
	config PollingLoopConfig,
	metrics LoopMetrics,
	logger logging.Logger,
) PollingLoop {
	loop := PollingLoop{
		config:  config,
		metrics: metrics,
	}

	loop.Logger = WorkerLogger(logger, &loop)
	return loop
}

func (l *PollingLoop) Name() string {
	return l.config.Name
}

func (l *PollingLoop) Run(ctx context.Context, started chan<- struct{}) error {
	close(started)

	ticker := time.NewTicker(l.config.Interval)
	defer ticker.Stop()

	for {
		handled, err := l.config.Action(ctx)
		if stop, result := l.afterPoll(ctx, handled, err); stop {
			return result
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *PollingLoop) afterPoll(ctx context.Context, handled bool, err error) (stop bool, _ error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return true, err
	case l.config.SingleTask:
		return handled || err != nil, err
	case err != nil:
		l.Logger.Error().Err(err).Bool("handled", handled).Msgf("Polling loop %s produced an error", l.config.Name)
		l.metrics.RecordError(ctx, l.config.Name)
	}
	return false, nil
}
