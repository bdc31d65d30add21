package types

// TaskResult is sent to the orchestrator after a successful run.
// Inputs and Outputs hold artifact paths.
type TaskResult struct {
	TaskId  TaskId         `json:"taskId"`
	Sender  TaskExecutorId `json:"sender"`
	Inputs  []string       `json:"inputs"`
	Outputs []string       `json:"outputs"`
}

func NewTaskResult(taskId TaskId, sender TaskExecutorId, inputs []string, outputs []string) *TaskResult {
	if inputs == nil {
		inputs = []string{}
	}
	if outputs == nil {
		outputs = []string{}
	}
	return &TaskResult{
		TaskId:  taskId,
		Sender:  sender,
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// TaskFailure is sent to the orchestrator instead of TaskResult when a run fails.
type TaskFailure struct {
	TaskId    TaskId         `json:"taskId"`
	Sender    TaskExecutorId `json:"sender"`
	Kind      ErrorKind      `json:"kind"`
	ErrorText string         `json:"errorText"`
	ExitCode  *int           `json:"exitCode,omitempty"`
}

func NewTaskFailure(taskId TaskId, sender TaskExecutorId, err error) *TaskFailure {
	failure := &TaskFailure{
		TaskId:    taskId,
		Sender:    sender,
		Kind:      KindOf(err),
		ErrorText: err.Error(),
	}
	if execFailure, ok := AsExecutionFailure(err); ok {
		failure.ExitCode = execFailure.ExitCode
	}
	return failure
}
