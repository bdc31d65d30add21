package stonenode

import (
	"context"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/services/stonenode/internal/api"
	"github.com/NilFoundation/stone/services/stonenode/internal/process"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/NilFoundation/stone/services/stonenode/internal/workspace"
)

// pipeline resolves a request, runs it and reports the outcome.
type pipeline struct {
	tool   Tool
	root   workspace.Root
	runner process.Runner
	logger logging.Logger
}

var _ api.TaskHandler = (*pipeline)(nil)

func (p *pipeline) run(ctx context.Context, request Request) ([]string, error) {
	spec := request.Command()
	p.logger.Debug().Stringer("command", spec).Msg("Command built")

	if _, err := p.runner.Run(ctx, spec); err != nil {
		return nil, err
	}
	return request.Outputs(), nil
}

func (p *pipeline) Handle(ctx context.Context, executorId types.TaskExecutorId, task *types.Task) (*types.TaskResult, error) {
	request, err := p.tool.FromTask(p.root, task)
	if err != nil {
		return nil, err
	}

	outputs, err := p.run(ctx, request)
	if err != nil {
		return nil, err
	}
	return newTaskResult(task, executorId, outputs), nil
}
