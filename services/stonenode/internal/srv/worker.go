package srv

import (
	"context"

	"github.com/NilFoundation/stone/common/logging"
)

type Worker interface {
	// Name returns the name of the Worker. This is typically used for logging and identification.
	Name() string

	// Run starts the worker, signaling its initialization through the started channel.
	Run(ctx context.Context, started chan<- struct{}) error
}

func WorkerLogger(logger logging.Logger, worker Worker) logging.Logger {
	return logger.With().Str(logging.FieldWorkerName, worker.Name()).Logger()
}
