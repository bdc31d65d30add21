package process

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/internal/telemetry"
	"github.com/NilFoundation/stone/services/stonenode/internal/command"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate go run github.com/matryer/moq -out runner_generated_mock.go -rm -stub -with-resets . Runner

type Runner interface {
	Run(ctx context.Context, spec command.Spec) (*Outcome, error)
}

// Executor runs external executables synchronously, one at a time.
type Executor struct {
	stdout io.Writer
	logger logging.Logger
	tracer telemetry.Tracer
}

var _ Runner = (*Executor)(nil)

// NewExecutor creates an Executor that streams child stdout to stdout
// and replays captured output there when the child fails.
func NewExecutor(stdout io.Writer, logger logging.Logger) *Executor {
	return &Executor{
		stdout: stdout,
		logger: logger,
		tracer: telemetry.NewTracer("process"),
	}
}

// Run starts the executable and blocks until it terminates.
// The child is never killed by the node: ctx is used for tracing only.
//
// Returned errors are *types.SpawnError (no Outcome) or *types.ExecutionFailure
// (Outcome is returned as well).
func (e *Executor) Run(ctx context.Context, spec command.Spec) (*Outcome, error) {
	_, span := e.tracer.Start(ctx, "process.run", trace.WithAttributes(
		attribute.String(logging.FieldExecutable, spec.Executable),
		attribute.StringSlice(logging.FieldCommandArgs, spec.Args),
	))
	defer span.End()

	outcome, err := e.run(spec)
	if outcome != nil && outcome.ExitCode != nil {
		span.SetAttributes(attribute.Int(logging.FieldExitCode, *outcome.ExitCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return outcome, err
}

func (e *Executor) run(spec command.Spec) (*Outcome, error) {
	var stdout, stderr bytes.Buffer
	live := &liveWriter{out: e.stdout}

	cmd := exec.Command(spec.Executable, spec.Args...) //nolint:gosec
	cmd.Stdout = io.MultiWriter(&stdout, live)
	cmd.Stderr = &stderr

	e.logger.Info().
		Str(logging.FieldExecutable, spec.Executable).
		Strs(logging.FieldCommandArgs, spec.Args).
		Msg("Starting executable")

	startTime := time.Now()
	if err := cmd.Start(); err != nil {
		e.logger.Error().Err(err).Str(logging.FieldExecutable, spec.Executable).Msg("Failed to start executable")
		return nil, &types.SpawnError{Executable: spec.Executable, Err: err}
	}

	// Wait releases the child's resources on every path once Start succeeded.
	waitErr := cmd.Wait()
	if live.err != nil {
		e.logger.Warn().Err(live.err).Str(logging.FieldExecutable, spec.Executable).Msg("Failed to stream executable output")
	}

	outcome := &Outcome{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(startTime),
	}
	if state := cmd.ProcessState; state != nil && state.Exited() {
		exitCode := state.ExitCode()
		outcome.ExitCode = &exitCode
	}

	if outcome.Success() {
		e.logger.Info().
			Str(logging.FieldExecutable, spec.Executable).
			Dur(logging.FieldDuration, outcome.Duration).
			Msg("Executable finished successfully")
		return outcome, nil
	}

	e.replay(outcome)

	failure := &types.ExecutionFailure{
		Executable: spec.Executable,
		ExitCode:   outcome.ExitCode,
		Stdout:     outcome.Stdout,
		Stderr:     outcome.Stderr,
		Err:        waitErr,
	}
	event := e.logger.Error().Err(failure).Str(logging.FieldExecutable, spec.Executable)
	if outcome.ExitCode != nil {
		event = event.Int(logging.FieldExitCode, *outcome.ExitCode)
	}
	event.Msg("Executable failed")

	return outcome, failure
}

// replay writes captured stdout and then stderr, so diagnostics are visible before the error is reported.
func (e *Executor) replay(outcome *Outcome) {
	// nothing to do with write errors: the run has already failed
	_, _ = e.stdout.Write(outcome.Stdout)
	_, _ = e.stdout.Write(outcome.Stderr)
}

// liveWriter streams child output to out until the first write error and then drops the rest.
// It never fails, so the capture buffer next to it always receives the complete output.
type liveWriter struct {
	out io.Writer
	err error
}

func (w *liveWriter) Write(p []byte) (int, error) {
	if w.err == nil {
		_, w.err = w.out.Write(p)
	}
	return len(p), nil
}
