package workspace

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"
)

type RootTestSuite struct {
	suite.Suite
	root Root
}

func TestRootSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RootTestSuite))
}

func (s *RootTestSuite) SetupTest() {
	var err error
	s.root, err = NewRoot(DefaultRoot)
	s.Require().NoError(err)
}

func (s *RootTestSuite) Test_NewRoot_Rejects_Invalid_Paths() {
	for _, path := range []string{"", "workspace", "./workspace"} {
		_, err := NewRoot(path)
		s.Require().ErrorIs(err, types.ErrConfiguration, "path %q", path)
	}
}

func (s *RootTestSuite) Test_NewRoot_Cleans_Path() {
	root, err := NewRoot("/workspace/./tasks/")
	s.Require().NoError(err)
	s.Require().Equal("/workspace/tasks", root.String())
}

func (s *RootTestSuite) Test_Resolve_Relative_Name() {
	path, err := s.root.Resolve("data")
	s.Require().NoError(err)
	s.Require().Equal("/workspace/data", path)

	path, err = s.root.Resolve("bin/cpu_air_prover")
	s.Require().NoError(err)
	s.Require().Equal("/workspace/bin/cpu_air_prover", path)
}

func (s *RootTestSuite) Test_Resolve_Absolute_Name_Is_Rooted() {
	path, err := s.root.Resolve("/data")
	s.Require().NoError(err)
	s.Require().Equal("/workspace/data", path)

	path, err = s.root.Resolve("/data/fib_proof.json")
	s.Require().NoError(err)
	s.Require().Equal("/workspace/data/fib_proof.json", path)
}

func (s *RootTestSuite) Test_Resolve_Name_Already_Under_Root() {
	path, err := s.root.Resolve("/workspace/data/")
	s.Require().NoError(err)
	s.Require().Equal("/workspace/data", path)
}

func (s *RootTestSuite) Test_Resolve_Rejects_Empty_Name() {
	_, err := s.root.Resolve("")
	s.Require().ErrorIs(err, types.ErrConfiguration)
}

func (s *RootTestSuite) Test_Resolve_Rejects_Escaping_Name() {
	for _, name := range []string{"..", "../etc/passwd", "data/../../etc"} {
		_, err := s.root.Resolve(name)
		s.Require().ErrorIs(err, types.ErrConfiguration, "name %q", name)
	}
}

func (s *RootTestSuite) Test_Resolve_Does_Not_Treat_Sibling_As_Inside() {
	path, err := s.root.Resolve("/workspace2/data")
	s.Require().NoError(err)
	s.Require().Equal("/workspace/workspace2/data", path)
}

func (s *RootTestSuite) Test_Zero_Root_Fails() {
	_, err := Root{}.Resolve("data")
	s.Require().ErrorIs(err, types.ErrConfiguration)
}

func (s *RootTestSuite) Test_ResolveAll_Stops_On_First_Error() {
	paths, err := s.root.ResolveAll("a", "b")
	s.Require().NoError(err)
	s.Require().Equal([]string{"/workspace/a", "/workspace/b"}, paths)

	_, err = s.root.ResolveAll("a", "", "b")
	s.Require().ErrorIs(err, types.ErrConfiguration)
}

func TestResolve_AlwaysRootedProperty(t *testing.T) {
	t.Parallel()

	segment := rapid.SampledFrom([]string{"data", "bin", "..", ".", "fib", "", "proofs", "workspace"})

	rapid.Check(t, func(t *rapid.T) {
		rootPath := rapid.SampledFrom([]string{"/workspace", "/tmp/ws", "/"}).Draw(t, "root")
		root, err := NewRoot(rootPath)
		if err != nil {
			t.Fatalf("unexpected root error: %v", err)
		}

		parts := rapid.SliceOfN(segment, 1, 6).Draw(t, "parts")
		name := strings.Join(parts, "/")
		if rapid.Bool().Draw(t, "absolute") {
			name = "/" + name
		}

		resolved, err := root.Resolve(name)
		if err != nil {
			if types.KindOf(err) != types.ErrorKindConfiguration {
				t.Fatalf("unexpected error kind for %q: %v", name, err)
			}
			return
		}

		if !filepath.IsAbs(resolved) {
			t.Fatalf("%q resolved to relative path %q", name, resolved)
		}
		if resolved != filepath.Clean(resolved) {
			t.Fatalf("%q resolved to unclean path %q", name, resolved)
		}
		if !root.contains(resolved) {
			t.Fatalf("%q resolved to %q outside of %s", name, resolved, root)
		}
	})
}
