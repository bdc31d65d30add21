package testaide

import (
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

func GenerateProverTask() *types.Task {
	return types.NewTask("prover", "bin/cpu_air_prover", "data", "fib")
}

func GenerateVerifierTask() *types.Task {
	return types.NewTask("verifier", "bin/cpu_air_verifier", "data/fib_proof.json")
}
