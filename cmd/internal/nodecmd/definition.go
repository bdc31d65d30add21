package nodecmd

import (
	"github.com/NilFoundation/stone/services/stonenode"
)

// ParamFlag is a standalone parameter exposed as a string flag of the run command.
type ParamFlag struct {
	Name  string
	Usage string
}

// Definition describes one node binary.
type Definition struct {
	Tool  stonenode.Tool
	Short string

	ParamFlags []ParamFlag
	// NewParams receives the flag values in ParamFlags order, unset flags are empty.
	NewParams func(values []string) stonenode.Params
}

func (d Definition) serviceName() string {
	return "stone_" + d.Tool.Name()
}
