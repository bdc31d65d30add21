package types

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// TaskId Unique ID of a task issued by the orchestrator
type TaskId uuid.UUID

func NewTaskId() TaskId          { return TaskId(uuid.New()) }
func (id TaskId) String() string { return uuid.UUID(id).String() }

// MarshalText implements the encoding.TextMarshaler interface for TaskId.
func (id TaskId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for TaskId.
func (id *TaskId) UnmarshalText(data []byte) error {
	uuidValue, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = TaskId(uuidValue)
	return nil
}

// TaskExecutorId identifies a node instance in requests to the orchestrator
type TaskExecutorId uint32

const UnknownExecutorId TaskExecutorId = 0

func NewRandomExecutorId() (TaskExecutorId, error) {
	bigInt, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt32))
	if err != nil {
		return UnknownExecutorId, err
	}
	// zero is reserved for UnknownExecutorId
	return TaskExecutorId(bigInt.Uint64() + 1), nil
}

// Task is a unit of work issued by the orchestrator.
// Args are positional: Args[0] is unused, Args[1] is the executable path relative to the workspace,
// the rest are tool-specific names relative to the workspace.
type Task struct {
	Id   TaskId   `json:"id"`
	Args []string `json:"args"`
}

func NewTask(args ...string) *Task {
	return &Task{Id: NewTaskId(), Args: args}
}

// firstNamedArg is the index of the first meaningful task argument.
const firstNamedArg = 1

// NamedArgs maps the given names onto Args[1:] and returns the values in the same order.
// It fails with ConfigurationError if the task carries fewer arguments than names
// or if any of the named arguments is empty.
func (t *Task) NamedArgs(names ...string) ([]string, error) {
	required := firstNamedArg + len(names)
	if len(t.Args) < required {
		return nil, NewConfigurationError(
			"task %s has %d argument(s), expected at least %d: [_, %s]",
			t.Id, len(t.Args), required, strings.Join(names, ", "),
		)
	}

	values := make([]string, len(names))
	for i, name := range names {
		value := t.Args[firstNamedArg+i]
		if value == "" {
			return nil, NewConfigurationError("task %s: argument %d (%s) is empty", t.Id, firstNamedArg+i, name)
		}
		values[i] = value
	}
	return values, nil
}
