package manager

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/kwargs/internal/coerce"
	"github.com/vk/kwargs/internal/registry"
	"github.com/vk/kwargs/internal/resolver"
)

func newSampleManager(t *testing.T, out *bytes.Buffer, scope map[string]any) *Manager {
	t.Helper()
	m := New(Options{Program: "resample", Output: out, Scope: scope})
	require.NoError(t, m.Add("sourcefile", "input file path", coerce.String()))
	require.NoError(t, m.Add("sinkfile", "output file path", coerce.String()))
	require.NoError(t, m.Add("nsamples", "sampling count", coerce.Int(), registry.WithDefault(10)))
	return m
}

func TestResolve_Success(t *testing.T) {
	// --- Arrange ---
	out := &bytes.Buffer{}
	scope := map[string]any{"unrelated": true}
	m := newSampleManager(t, out, scope)

	// --- Act ---
	res := m.Resolve([]string{"infile", "outfile", "20"})

	// --- Assert ---
	require.Equal(t, resolver.Resolved, res.Outcome)
	assert.Empty(t, out.String(), "nothing is printed on success")
	assert.Equal(t, map[string]any{
		"unrelated":  true,
		"sourcefile": "infile",
		"sinkfile":   "outfile",
		"nsamples":   20,
	}, scope)
}

func TestResolve_HelpPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	scope := map[string]any{}
	m := newSampleManager(t, out, scope)

	res := m.Resolve([]string{"infile", "?"})

	require.Equal(t, resolver.HelpRequested, res.Outcome)
	assert.True(t, strings.HasPrefix(out.String(), "usage: resample arg0 arg1"))
	assert.Contains(t, out.String(), "sampling count")
	assert.NotContains(t, out.String(), "error:")
	assert.Empty(t, scope, "scope is untouched unless resolution succeeds")
}

func TestResolve_FailurePrintsUsageAndCondition(t *testing.T) {
	out := &bytes.Buffer{}
	scope := map[string]any{}
	m := newSampleManager(t, out, scope)

	res := m.Resolve([]string{"infile"})

	require.Equal(t, resolver.Failed, res.Outcome)
	assert.Contains(t, out.String(), "usage: resample")
	assert.Contains(t, out.String(), `error: missing required argument "sinkfile" at position 2`)
	assert.Empty(t, scope)
}

func TestParse(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		m := newSampleManager(t, &bytes.Buffer{}, nil)

		values, err := m.Parse([]string{"infile", "sinkfile=outfile", "nsamples=20"})

		require.NoError(t, err)
		assert.Equal(t, resolver.Values{"sourcefile": "infile", "sinkfile": "outfile", "nsamples": 20}, values)
	})

	t.Run("help", func(t *testing.T) {
		m := newSampleManager(t, &bytes.Buffer{}, nil)

		values, err := m.Parse([]string{"help"})

		require.ErrorIs(t, err, ErrHelp)
		assert.Nil(t, values)
	})

	t.Run("failure", func(t *testing.T) {
		m := newSampleManager(t, &bytes.Buffer{}, nil)

		_, err := m.Parse([]string{"sinkfile=outfile", "nsamples=20"})

		var missing *resolver.MissingMandatoryArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "sourcefile", missing.Name)
	})
}

func TestUsage_IncludesAppendix(t *testing.T) {
	m := New(Options{Program: "p", Appendix: "  Methods are:\n", Output: &bytes.Buffer{}})
	require.NoError(t, m.Add("method", "method nr: 1-4", coerce.IntRange(1, 4), registry.WithDefault(3)))

	page := m.Usage()

	assert.Contains(t, page, "int[1..4]")
	assert.True(t, strings.HasSuffix(page, "\n  Methods are:\n"))
}

func TestAdd_Duplicate(t *testing.T) {
	m := New(Options{Output: &bytes.Buffer{}})
	require.NoError(t, m.Add("a", "", nil))

	var dup *registry.DuplicateNameError
	require.ErrorAs(t, m.Add("a", "", nil), &dup)
	assert.Equal(t, 1, m.Registry().Len())
}

func TestNew_DefaultsProgramName(t *testing.T) {
	m := New(Options{})

	assert.Equal(t, filepath.Base(os.Args[0]), m.opts.Program)
	assert.Equal(t, os.Stderr, m.opts.Output)
}

type methodArgs struct {
	Source string `arg:"srcfile"`
	Sink   string `arg:"snkfile"`
	Method int    `arg:"method"`
}

func declareMethodArgs(m *Manager) error {
	if err := m.Add("srcfile", " input file path", coerce.ExistingPath()); err != nil {
		return err
	}
	if err := m.Add("snkfile", "output file path", coerce.ExistingPath()); err != nil {
		return err
	}
	return m.Add("method", "method nr: 1-4", coerce.IntRange(1, 4), registry.WithDefault(3))
}

func TestBind(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	outFile := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(in, nil, 0600))
	require.NoError(t, os.WriteFile(outFile, nil, 0600))

	testCases := []struct {
		name       string
		args       []string
		expectErr  bool
		expectHelp bool
		expected   methodArgs
	}{
		{name: "positional", args: []string{in, outFile}, expected: methodArgs{in, outFile, 3}},
		{name: "positional method", args: []string{in, outFile, "1"}, expected: methodArgs{in, outFile, 1}},
		{name: "keyword method", args: []string{in, outFile, "method=3"}, expected: methodArgs{in, outFile, 3}},
		{name: "mixed", args: []string{in, "snkfile=" + outFile, "method=4"}, expected: methodArgs{in, outFile, 4}},
		{name: "mixed default", args: []string{in, "snkfile=" + outFile}, expected: methodArgs{in, outFile, 3}},
		{name: "all keyword", args: []string{"srcfile=" + in, "snkfile=" + outFile, "method=2"}, expected: methodArgs{in, outFile, 2}},
		{name: "error - one path", args: []string{outFile}, expectErr: true},
		{name: "error - method below range", args: []string{in, outFile, "0"}, expectErr: true},
		{name: "error - method above range", args: []string{in, outFile, "method=5"}, expectErr: true},
		{name: "error - missing file", args: []string{in, filepath.Join(dir, "nope")}, expectErr: true},
		{name: "help", args: []string{"usage"}, expectHelp: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			scope := map[string]any{}
			var target methodArgs

			_, err := Bind(Options{Program: "methods", Output: out, Scope: scope}, tc.args, &target, declareMethodArgs)

			switch {
			case tc.expectHelp:
				require.ErrorIs(t, err, ErrHelp)
				assert.Contains(t, out.String(), "method nr: 1-4")
			case tc.expectErr:
				require.Error(t, err)
				assert.Contains(t, out.String(), "error: ")
				assert.Empty(t, scope)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expected, target)
				assert.Equal(t, tc.expected.Method, scope["method"])
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestBind_DeclarationError(t *testing.T) {
	_, err := Bind(Options{Output: &bytes.Buffer{}}, nil, nil, func(m *Manager) error {
		if err := m.Add("a", "", nil); err != nil {
			return err
		}
		return m.Add("a", "", nil)
	})

	var dup *registry.DuplicateNameError
	require.ErrorAs(t, err, &dup)
}
