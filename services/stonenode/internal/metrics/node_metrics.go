package metrics

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/NilFoundation/stone/internal/telemetry"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	attributeTool     = "tool"
	attributeHostname = "hostname"
	attributeLoop     = "loop"
	attributeOutcome  = "outcome"
	attributeKind     = "kind"

	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type NodeMetrics interface {
	// RecordError counts an error swallowed by the named polling loop.
	RecordError(ctx context.Context, loop string)
	RecordTaskStarted(ctx context.Context)
	RecordTaskFinished(ctx context.Context, err error)
}

// NodeMetricsHandler exports the task counters of one tool. All instruments share the tool attribute set.
type NodeMetricsHandler struct {
	attributes metric.MeasurementOption

	pollErrors   metric.Int64Counter
	tasks        metric.Int64Counter
	taskFailures metric.Int64Counter
	taskDuration metric.Int64Histogram

	mu          sync.Mutex
	taskStarted time.Time
}

var _ NodeMetrics = (*NodeMetricsHandler)(nil)

// NewNodeMetrics registers the node instruments under the given tool name, e.g. "prover".
func NewNodeMetrics(tool string) (*NodeMetricsHandler, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %w", err)
	}
	return newNodeMetrics(tool, hostname, telemetry.NewMeter(tool))
}

func newNodeMetrics(tool string, hostname string, meter telemetry.Meter) (*NodeMetricsHandler, error) {
	h := &NodeMetricsHandler{
		attributes: metric.WithAttributeSet(attribute.NewSet(
			attribute.String(attributeTool, tool),
			attribute.String(attributeHostname, hostname),
		)),
	}

	var err error
	if h.pollErrors, err = meter.Int64Counter(
		tool+"_poll_errors_total",
		metric.WithDescription("Errors encountered by the task polling loop"),
	); err != nil {
		return nil, fmt.Errorf("failed to init %s metrics: %w", tool, err)
	}
	if h.tasks, err = meter.Int64Counter(
		tool+"_tasks_total",
		metric.WithDescription("Tasks handled, by outcome"),
	); err != nil {
		return nil, fmt.Errorf("failed to init %s metrics: %w", tool, err)
	}
	if h.taskFailures, err = meter.Int64Counter(
		tool+"_task_failures_total",
		metric.WithDescription("Failed tasks, by error kind"),
	); err != nil {
		return nil, fmt.Errorf("failed to init %s metrics: %w", tool, err)
	}
	if h.taskDuration, err = meter.Int64Histogram(
		tool+"_task_duration",
		metric.WithDescription("Time spent running the external executable for a task"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to init %s metrics: %w", tool, err)
	}
	return h, nil
}

func (h *NodeMetricsHandler) RecordError(ctx context.Context, loop string) {
	h.pollErrors.Add(ctx, 1, h.attributes, metric.WithAttributes(attribute.String(attributeLoop, loop)))
}

func (h *NodeMetricsHandler) RecordTaskStarted(_ context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.taskStarted = time.Now()
}

func (h *NodeMetricsHandler) RecordTaskFinished(ctx context.Context, err error) {
	h.mu.Lock()
	elapsed := time.Since(h.taskStarted)
	h.mu.Unlock()

	outcome := metric.WithAttributes(attribute.String(attributeOutcome, outcomeSuccess))
	if err != nil {
		outcome = metric.WithAttributes(attribute.String(attributeOutcome, outcomeFailure))
		kind := attribute.String(attributeKind, string(types.KindOf(err)))
		h.taskFailures.Add(ctx, 1, h.attributes, metric.WithAttributes(kind))
	}

	h.tasks.Add(ctx, 1, h.attributes, outcome)
	h.taskDuration.Record(ctx, elapsed.Milliseconds(), h.attributes, outcome)
}
