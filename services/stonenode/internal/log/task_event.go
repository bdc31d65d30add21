package log

import (
	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/rs/zerolog"
)

// NewTaskEvent starts a log event carrying the task identity and its raw arguments.
func NewTaskEvent(logger logging.Logger, level zerolog.Level, task *types.Task) *zerolog.Event {
	return logger.WithLevel(level).
		Stringer(logging.FieldTaskId, task.Id).
		Strs(logging.FieldTaskArgs, task.Args)
}

func NewTaskResultEvent(logger logging.Logger, level zerolog.Level, result *types.TaskResult) *zerolog.Event {
	return logger.WithLevel(level).
		Stringer(logging.FieldTaskId, result.TaskId).
		Strs(logging.FieldOutputs, result.Outputs)
}
