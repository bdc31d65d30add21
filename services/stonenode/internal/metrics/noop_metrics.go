package metrics

import "context"

type noopNodeMetrics struct{}

func NewNoopNodeMetrics() NodeMetrics {
	return noopNodeMetrics{}
}

func (noopNodeMetrics) RecordError(context.Context, string) {}

func (noopNodeMetrics) RecordTaskStarted(context.Context) {}

func (noopNodeMetrics) RecordTaskFinished(context.Context, error) {}
