package types

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration    = errors.New("configuration error")
	ErrSpawn            = errors.New("failed to start executable")
	ErrExecutionFailure = errors.New("executable failed")
)

// ErrorKind classifies a failed invocation for the orchestrator.
type ErrorKind string

const (
	ErrorKindUnknown       ErrorKind = "unknown"
	ErrorKindConfiguration ErrorKind = "configuration"
	ErrorKindSpawn         ErrorKind = "spawn"
	ErrorKindExecution     ErrorKind = "execution"
)

func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrConfiguration):
		return ErrorKindConfiguration
	case errors.Is(err, ErrSpawn):
		return ErrorKindSpawn
	case errors.Is(err, ErrExecutionFailure):
		return ErrorKindExecution
	default:
		return ErrorKindUnknown
	}
}

// ConfigurationError is raised before any process is spawned:
// partially specified standalone parameters, absent task arguments, bad paths.
type ConfigurationError struct {
	Reason string
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// SpawnError means the executable could not be started at all.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrSpawn, e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawn
}

// ExecutionFailure means the executable started but did not exit normally with status 0.
// ExitCode is nil if the process terminated abnormally (e.g. killed by a signal).
type ExecutionFailure struct {
	Executable string
	ExitCode   *int
	Stdout     []byte
	Stderr     []byte
	Err        error
}

func (e *ExecutionFailure) Error() string {
	if e.ExitCode == nil {
		return fmt.Sprintf("%s: %s terminated abnormally: %v", ErrExecutionFailure, e.Executable, e.Err)
	}
	return fmt.Sprintf("%s: %s, status: %d", ErrExecutionFailure, e.Executable, *e.ExitCode)
}

func (e *ExecutionFailure) Unwrap() error {
	return e.Err
}

func (e *ExecutionFailure) Is(target error) bool {
	return target == ErrExecutionFailure
}

func AsExecutionFailure(err error) (*ExecutionFailure, bool) {
	var failure *ExecutionFailure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}
