package api

import (
	"context"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

const (
	TaskSourceNamespace         = "TaskSource"
	TaskSourceGetTask           = TaskSourceNamespace + "_getTask"
	TaskSourceSetTaskResult     = TaskSourceNamespace + "_setTaskResult"
	TaskSourceReportTaskFailure = TaskSourceNamespace + "_reportTaskFailure"
)

type TaskRequest struct {
	ExecutorId types.TaskExecutorId `json:"executorId"`
	Tool       string               `json:"tool"`
}

func NewTaskRequest(executorId types.TaskExecutorId, tool string) *TaskRequest {
	return &TaskRequest{ExecutorId: executorId, Tool: tool}
}

// TaskSource is the orchestrator as seen by the node.
type TaskSource interface {
	// GetTask returns the next task for the executor, or nil if there is none yet.
	GetTask(ctx context.Context, request *TaskRequest) (*types.Task, error)

	// SetTaskResult is called exactly once for every successfully executed task.
	SetTaskResult(ctx context.Context, result *types.TaskResult) error

	// ReportTaskFailure is the error channel, called instead of SetTaskResult when a task fails.
	ReportTaskFailure(ctx context.Context, failure *types.TaskFailure) error
}
