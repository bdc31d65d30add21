package prover

import (
	"path/filepath"
	"strings"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

const (
	proverConfigFileName = "cpu_air_prover_config.json"
	parameterFileName    = "cpu_air_params.json"
)

// Layout is the set of files the prover reads and writes inside a data directory.
type Layout struct {
	OutFile          string
	PrivateInputFile string
	PublicInputFile  string
	ProverConfigFile string
	ParameterFile    string
}

// NewLayout derives prover files from a data directory and a program name without extension, e.g. "fib".
func NewLayout(dataDir string, programName string) (Layout, error) {
	if err := validateProgramName(programName); err != nil {
		return Layout{}, err
	}

	return Layout{
		OutFile:          filepath.Join(dataDir, programName+"_proof.json"),
		PrivateInputFile: filepath.Join(dataDir, programName+"_private_input.json"),
		PublicInputFile:  filepath.Join(dataDir, programName+"_public_input.json"),
		ProverConfigFile: filepath.Join(dataDir, proverConfigFileName),
		ParameterFile:    filepath.Join(dataDir, parameterFileName),
	}, nil
}

func validateProgramName(programName string) error {
	switch {
	case programName == "":
		return types.NewConfigurationError("program name is empty")
	case programName == "." || programName == "..":
		return types.NewConfigurationError("invalid program name %q", programName)
	case strings.ContainsRune(programName, filepath.Separator):
		return types.NewConfigurationError("program name %q must not contain path separators", programName)
	default:
		return nil
	}
}

// values are ordered as the flags of commandSchema.
func (l Layout) values() []string {
	return []string{
		l.OutFile,
		l.PrivateInputFile,
		l.PublicInputFile,
		l.ProverConfigFile,
		l.ParameterFile,
	}
}
