package executor

import (
	"context"
	"testing"
	"time"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/services/stonenode/internal/api"
	"github.com/NilFoundation/stone/services/stonenode/internal/metrics"
	"github.com/NilFoundation/stone/services/stonenode/internal/testaide"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type TestSuite struct {
	suite.Suite
	context      context.Context
	cancellation context.CancelFunc
	source       *api.TaskSourceMock
	handler      *api.TaskHandlerMock
}

func (s *TestSuite) SetupTest() {
	s.context, s.cancellation = context.WithCancel(context.Background())
	s.source = newTaskSourceMock()
	s.handler = &api.TaskHandlerMock{
		HandleFunc: func(_ context.Context, executorId types.TaskExecutorId, task *types.Task) (*types.TaskResult, error) {
			return types.NewTaskResult(task.Id, executorId, nil, []string{"/workspace/data/fib_proof.json"}), nil
		},
	}
}

func (s *TestSuite) TearDownTest() {
	s.cancellation()
}

func (s *TestSuite) newExecutor(singleTask bool) *taskExecutor {
	s.T().Helper()

	config := Config{
		Tool:                "prover",
		TaskPollingInterval: 10 * time.Millisecond,
		SingleTask:          singleTask,
	}
	logger := logging.NewLogger("task_executor_test")
	executor, err := New(&config, s.source, s.handler, metrics.NewNoopNodeMetrics(), logger)
	s.Require().NoError(err)
	return executor
}

func newTaskSourceMock() *api.TaskSourceMock {
	return &api.TaskSourceMock{
		GetTaskFunc: func(context.Context, *api.TaskRequest) (*types.Task, error) {
			return testaide.GenerateProverTask(), nil
		},
		SetTaskResultFunc: func(context.Context, *types.TaskResult) error {
			return nil
		},
		ReportTaskFailureFunc: func(context.Context, *types.TaskFailure) error {
			return nil
		},
	}
}
