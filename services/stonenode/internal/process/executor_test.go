package process

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/services/stonenode/internal/command"
	"github.com/NilFoundation/stone/services/stonenode/internal/testaide"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type ExecutorTestSuite struct {
	suite.Suite
	context  context.Context
	dir      string
	stdout   *bytes.Buffer
	executor *Executor
}

func TestExecutorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExecutorTestSuite))
}

func (s *ExecutorTestSuite) SetupTest() {
	s.context = context.Background()
	s.dir = s.T().TempDir()
	s.stdout = &bytes.Buffer{}
	s.executor = NewExecutor(s.stdout, logging.NewLogger("executor_test"))
}

func (s *ExecutorTestSuite) Test_Success_Streams_And_Captures_Stdout() {
	executable := testaide.WriteExecutable(s.T(), s.dir, "tool", testaide.SucceedingScript+"\necho 'warning' >&2")
	spec := command.Spec{Executable: executable, Args: []string{"--in-file=/workspace/proof.json"}}

	outcome, err := s.executor.Run(s.context, spec)
	s.Require().NoError(err)
	s.Require().True(outcome.Success())
	s.Require().NotNil(outcome.ExitCode)
	s.Require().Equal(0, *outcome.ExitCode)
	s.Require().Equal("--in-file=/workspace/proof.json\n", string(outcome.Stdout))
	s.Require().Equal("warning\n", string(outcome.Stderr))

	// stdout is streamed live, stderr is only captured on success
	s.Require().Equal("--in-file=/workspace/proof.json\n", s.stdout.String())
}

func (s *ExecutorTestSuite) Test_NonZero_Exit_Is_Execution_Failure() {
	executable := testaide.WriteExecutable(s.T(), s.dir, "tool", testaide.FailingScript)

	outcome, err := s.executor.Run(s.context, command.Spec{Executable: executable})
	s.Require().ErrorIs(err, types.ErrExecutionFailure)
	s.Require().Contains(err.Error(), "status: 1")

	failure, ok := types.AsExecutionFailure(err)
	s.Require().True(ok)
	s.Require().NotNil(failure.ExitCode)
	s.Require().Equal(1, *failure.ExitCode)
	s.Require().Equal("proving...\n", string(failure.Stdout))
	s.Require().Equal("bad input\n", string(failure.Stderr))

	s.Require().NotNil(outcome)
	s.Require().False(outcome.Success())
}

func (s *ExecutorTestSuite) Test_Failure_Replays_Captured_Output() {
	executable := testaide.WriteExecutable(s.T(), s.dir, "tool", testaide.FailingScript)

	_, err := s.executor.Run(s.context, command.Spec{Executable: executable})
	s.Require().Error(err)

	// live stdout, then the replay of stdout and stderr
	s.Require().Equal("proving...\nproving...\nbad input\n", s.stdout.String())
}

func (s *ExecutorTestSuite) Test_Abnormal_Termination_Has_No_Exit_Code() {
	executable := testaide.WriteExecutable(s.T(), s.dir, "tool", "echo 'about to die' >&2\nkill -9 $$")

	outcome, err := s.executor.Run(s.context, command.Spec{Executable: executable})
	s.Require().ErrorIs(err, types.ErrExecutionFailure)
	s.Require().Contains(err.Error(), "terminated abnormally")
	s.Require().Nil(outcome.ExitCode)

	failure, ok := types.AsExecutionFailure(err)
	s.Require().True(ok)
	s.Require().Nil(failure.ExitCode)
	s.Require().Contains(s.stdout.String(), "about to die")
}

func (s *ExecutorTestSuite) Test_Missing_Executable_Is_Spawn_Error() {
	missing := filepath.Join(s.dir, "bin", "missing")

	outcome, err := s.executor.Run(s.context, command.Spec{Executable: missing})
	s.Require().Nil(outcome)
	s.Require().ErrorIs(err, types.ErrSpawn)
	s.Require().ErrorIs(err, fs.ErrNotExist)
	s.Require().NotErrorIs(err, types.ErrExecutionFailure)
	s.Require().Empty(s.stdout.String())
}

func (s *ExecutorTestSuite) Test_Non_Executable_File_Is_Spawn_Error() {
	path := filepath.Join(s.dir, "not_executable")
	s.Require().NoError(os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644))

	_, err := s.executor.Run(s.context, command.Spec{Executable: path})
	s.Require().ErrorIs(err, types.ErrSpawn)
	s.Require().ErrorIs(err, fs.ErrPermission)
}

func (s *ExecutorTestSuite) Test_Large_Output_Is_Captured_Completely() {
	executable := testaide.WriteExecutable(s.T(), s.dir, "tool", `i=0; while [ $i -lt 2000 ]; do echo "line $i"; i=$((i+1)); done`)

	outcome, err := s.executor.Run(s.context, command.Spec{Executable: executable})
	s.Require().NoError(err)
	s.Require().Equal(bytes.Count(outcome.Stdout, []byte("\n")), 2000)
	s.Require().Equal(outcome.Stdout, s.stdout.Bytes())
}

type brokenWriter struct {
	writes int
}

func (w *brokenWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func (s *ExecutorTestSuite) Test_Broken_Stdout_Does_Not_Truncate_Capture() {
	out := &brokenWriter{}
	executor := NewExecutor(out, logging.NewLogger("executor_test"))
	executable := testaide.WriteExecutable(s.T(), s.dir, "tool", `i=0; while [ $i -lt 20000 ]; do echo "proving step $i"; i=$((i+1)); done`)

	outcome, err := executor.Run(s.context, command.Spec{Executable: executable})
	s.Require().NoError(err)
	s.Require().Equal(20000, bytes.Count(outcome.Stdout, []byte("\n")))
	s.Require().Equal(1, out.writes, "streaming stops after the first failed write")
}

func (s *ExecutorTestSuite) Test_Broken_Stdout_Failure_Keeps_Complete_Output() {
	executor := NewExecutor(&brokenWriter{}, logging.NewLogger("executor_test"))
	executable := testaide.WriteExecutable(s.T(), s.dir, "tool", `i=0; while [ $i -lt 20000 ]; do echo "proving step $i"; i=$((i+1)); done
echo "bad input" >&2
exit 1`)

	outcome, err := executor.Run(s.context, command.Spec{Executable: executable})
	s.Require().ErrorIs(err, types.ErrExecutionFailure)

	var failure *types.ExecutionFailure
	s.Require().ErrorAs(err, &failure)
	s.Require().Equal(20000, bytes.Count(failure.Stdout, []byte("\n")))
	s.Require().Equal(outcome.Stdout, failure.Stdout)
	s.Require().Equal("bad input\n", string(failure.Stderr))
}
