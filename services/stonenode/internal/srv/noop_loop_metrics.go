package srv

import "context"

type noopLoopMetrics struct{}

func NewNoopLoopMetrics() LoopMetrics {
	return noopLoopMetrics{}
}

func (noopLoopMetrics) RecordError(context.Context, string) {}
