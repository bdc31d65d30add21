package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"
	FieldDuration  = "duration"
	FieldUrl       = "url"

	FieldRpcMethod = "rpcMethod"

	FieldWorkerName = "workerName"
	FieldToolName   = "tool"
	FieldWorkspace  = "workspace"

	FieldTaskId     = "taskId"
	FieldTaskArgs   = "taskArgs"
	FieldExecutorId = "executorId"
	FieldErrorKind  = "errorKind"

	FieldExecutable  = "executable"
	FieldCommandArgs = "commandArgs"
	FieldExitCode    = "exitCode"
	FieldOutputs     = "outputs"
)
