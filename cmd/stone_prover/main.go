package main

import (
	"os"

	"github.com/NilFoundation/stone/cmd/internal/nodecmd"
	"github.com/NilFoundation/stone/services/stonenode"
	"github.com/NilFoundation/stone/services/stonenode/prover"
)

func main() {
	os.Exit(nodecmd.Execute(nodecmd.Definition{
		Tool:  prover.NewTool(),
		Short: "Run stone prover node",
		ParamFlags: []nodecmd.ParamFlag{
			{Name: prover.ExecutablePathParam, Usage: "path to the stone-prover executable"},
			{Name: prover.DataDirParam, Usage: "directory where the private/public input and config params files are located"},
			{Name: prover.ProgramNameParam, Usage: "program name without extension, e.g. fibonacci"},
		},
		NewParams: func(values []string) stonenode.Params {
			return prover.Params{
				ExecutablePath: values[0],
				DataDir:        values[1],
				ProgramName:    values[2],
			}
		},
	}))
}
