package api

import (
	"context"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

type TaskHandler interface {
	// Handle runs the task to completion. A nil error always comes with a non-nil result.
	Handle(ctx context.Context, executorId types.TaskExecutorId, task *types.Task) (*types.TaskResult, error)
}
