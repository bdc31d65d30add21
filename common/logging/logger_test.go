package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo_Formats_Component_Column(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := NewLoggerTo(&out, "prover")
	logger.Info().Str(FieldTaskId, "42").Msg("Executing task")

	line := out.String()
	require.Contains(t, line, "[prover]\t")
	require.Contains(t, line, "Executing task")
	require.Contains(t, line, FieldTaskId+"=42")
	require.NotContains(t, line, "\x1b[", "buffers are not terminals")
}

func TestSetupGlobalLogger_Rejects_Unknown_Level(t *testing.T) {
	t.Parallel()

	require.Error(t, SetupGlobalLogger("stone_prover", "loud"))
}
