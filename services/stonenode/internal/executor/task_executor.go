package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/services/stonenode/internal/api"
	"github.com/NilFoundation/stone/services/stonenode/internal/log"
	"github.com/NilFoundation/stone/services/stonenode/internal/metrics"
	"github.com/NilFoundation/stone/services/stonenode/internal/srv"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/rs/zerolog"
)

const (
	DefaultTaskPollingInterval = time.Second
)

type Config struct {
	// Tool is sent to the orchestrator with every task request
	Tool                string
	TaskPollingInterval time.Duration
	// SingleTask makes Run return after the first received task is handled
	SingleTask bool
}

func DefaultConfig(tool string) *Config {
	return &Config{
		Tool:                tool,
		TaskPollingInterval: DefaultTaskPollingInterval,
		SingleTask:          true,
	}
}

type TaskExecutor interface {
	Id() types.TaskExecutorId
	Run(ctx context.Context) error
}

func New(
	config *Config,
	source api.TaskSource,
	handler api.TaskHandler,
	metrics metrics.NodeMetrics,
	logger logging.Logger,
) (*taskExecutor, error) {
	if config.TaskPollingInterval <= 0 {
		return nil, types.NewConfigurationError("task polling interval must be positive, got %s", config.TaskPollingInterval)
	}

	executorId, err := types.NewRandomExecutorId()
	if err != nil {
		return nil, fmt.Errorf("failed to generate executor id: %w", err)
	}

	executor := &taskExecutor{
		id:      executorId,
		config:  *config,
		source:  source,
		handler: handler,
		metrics: metrics,
	}

	loopConfig := srv.NewPollingLoopConfig(
		"task_executor",
		executor.config.TaskPollingInterval,
		executor.config.SingleTask,
		executor.pollOnce,
	)
	executor.PollingLoop = srv.NewPollingLoop(loopConfig, metrics, logger)
	executor.Logger = executor.Logger.With().
		Uint32(logging.FieldExecutorId, uint32(executorId)).
		Str(logging.FieldToolName, config.Tool).
		Logger()
	return executor, nil
}

type taskExecutor struct {
	srv.PollingLoop

	id      types.TaskExecutorId
	config  Config
	source  api.TaskSource
	handler api.TaskHandler
	metrics metrics.NodeMetrics
}

var _ TaskExecutor = (*taskExecutor)(nil)

func (e *taskExecutor) Id() types.TaskExecutorId {
	return e.id
}

// Run polls the task source. With SingleTask it returns the outcome of the first task,
// otherwise it keeps handling tasks until ctx is done.
func (e *taskExecutor) Run(ctx context.Context) error {
	return e.PollingLoop.Run(ctx, make(chan struct{}))
}

func (e *taskExecutor) pollOnce(ctx context.Context) (handled bool, err error) {
	task, err := e.source.GetTask(ctx, api.NewTaskRequest(e.id, e.config.Tool))
	if err != nil {
		return false, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		e.Logger.Debug().Msg("no task available, waiting for new one")
		return false, nil
	}

	return true, e.handleTask(ctx, task)
}

func (e *taskExecutor) handleTask(ctx context.Context, task *types.Task) error {
	log.NewTaskEvent(e.Logger, zerolog.InfoLevel, task).Msg("Executing task")

	e.metrics.RecordTaskStarted(ctx)
	result, err := e.handler.Handle(ctx, e.id, task)
	e.metrics.RecordTaskFinished(ctx, err)

	if err != nil {
		log.NewTaskEvent(e.Logger, zerolog.ErrorLevel, task).
			Err(err).
			Str(logging.FieldErrorKind, string(types.KindOf(err))).
			Msg("Error handling task")

		failure := types.NewTaskFailure(task.Id, e.id, err)
		if reportErr := e.source.ReportTaskFailure(ctx, failure); reportErr != nil {
			return errors.Join(err, fmt.Errorf("failed to report task failure: %w", reportErr))
		}
		return err
	}

	log.NewTaskResultEvent(e.Logger, zerolog.InfoLevel, result).Msg("Execution of task is successfully completed")

	if err := e.source.SetTaskResult(ctx, result); err != nil {
		return fmt.Errorf("failed to set task result: %w", err)
	}
	return nil
}
