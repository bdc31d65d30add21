package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NilFoundation/stone/common"
	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/services/stonenode/internal/api"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

type taskSourceRpcClient struct {
	client      *rawClient
	retryRunner common.RetryRunner
}

// NewTaskSourceRpcClient connects the node to the orchestrator's JSON-RPC API.
// Transport failures are retried; errors returned by the orchestrator itself are not.
func NewTaskSourceRpcClient(endpoint string, logger logging.Logger) (api.TaskSource, error) {
	client, err := newRawClient(endpoint, logger)
	if err != nil {
		return nil, err
	}

	retryRunner := common.NewRetryRunner(
		common.RetryConfig{
			ShouldRetry: common.DoNotRetryIf(
				common.LimitRetries(5),
				isPermanentError,
			),
			NextDelay: common.ExponentialDelay(100*time.Millisecond, time.Second),
		},
		logger,
	)

	return &taskSourceRpcClient{
		client:      client,
		retryRunner: retryRunner,
	}, nil
}

func (r *taskSourceRpcClient) GetTask(ctx context.Context, request *api.TaskRequest) (*types.Task, error) {
	return callWithRetry[*types.Task](ctx, r, api.TaskSourceGetTask, request)
}

func (r *taskSourceRpcClient) SetTaskResult(ctx context.Context, result *types.TaskResult) error {
	_, err := callWithRetry[any](ctx, r, api.TaskSourceSetTaskResult, result)
	return err
}

func (r *taskSourceRpcClient) ReportTaskFailure(ctx context.Context, failure *types.TaskFailure) error {
	_, err := callWithRetry[any](ctx, r, api.TaskSourceReportTaskFailure, failure)
	return err
}

func callWithRetry[Res any](
	ctx context.Context,
	client *taskSourceRpcClient,
	method string,
	req any,
) (Res, error) {
	var rawResponse rawMessage
	var response Res

	err := client.retryRunner.Do(ctx, func(ctx context.Context) error {
		var err error
		rawResponse, err = client.client.RawCall(ctx, method, req)
		return err
	})
	if err != nil {
		return response, err
	}

	if isNull(rawResponse) {
		return response, nil
	}

	if err := json.Unmarshal(rawResponse, &response); err != nil {
		return response, fmt.Errorf("%w: %s: %w", ErrFailedToUnmarshalResponse, method, err)
	}
	return response, nil
}

func isPermanentError(err error) bool {
	return errors.Is(err, ErrRPCError) ||
		errors.Is(err, ErrFailedToMarshalRequest) ||
		errors.Is(err, ErrFailedToUnmarshalResponse) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
