package stonenode

import (
	"strings"

	"github.com/NilFoundation/stone/services/stonenode/internal/tool"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

type (
	Tool    = tool.Tool
	Request = tool.Request
	Params  = tool.Params
	Param   = tool.Param
)

// Mode is either StandaloneMode or TaskDrivenMode.
type Mode interface {
	isMode()
}

// StandaloneMode runs a single request built from operator supplied parameters.
type StandaloneMode struct {
	Params Params
}

// TaskDrivenMode receives requests from the orchestrator.
type TaskDrivenMode struct{}

func (StandaloneMode) isMode() {}

func (TaskDrivenMode) isMode() {}

// SelectMode picks TaskDrivenMode when no parameter is set and StandaloneMode when all of them are.
// Anything in between is a configuration error.
func SelectMode(params Params) (Mode, error) {
	if params == nil {
		return TaskDrivenMode{}, nil
	}

	var set, missing []string
	for _, param := range params.List() {
		if param.IsSet() {
			set = append(set, param.Name)
		} else {
			missing = append(missing, param.Name)
		}
	}

	switch {
	case len(set) == 0:
		return TaskDrivenMode{}, nil
	case len(missing) == 0:
		return StandaloneMode{Params: params}, nil
	default:
		return nil, types.NewConfigurationError(
			"standalone mode requires all parameters, got [%s], missing [%s]",
			strings.Join(set, ", "), strings.Join(missing, ", "),
		)
	}
}
