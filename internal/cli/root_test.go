package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulouiha.dev/internal/views"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "portfolio", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"serve", "build", "browse", "archive", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	for _, name := range []string{"content", "lang", "reduced-motion"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestBuildCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	build, _, err := cmd.Find([]string{"build"})
	require.NoError(t, err)

	output := build.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "dist", output.DefValue)
	assert.NotNil(t, build.Flags().Lookup("watch"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio dev\n", out)
}

func TestArchiveCommand(t *testing.T) {
	out, err := execute(t, "archive")
	require.NoError(t, err)
	assert.Contains(t, out, "Année")
	assert.Contains(t, out, "SAE 15")

	out, err = execute(t, "archive", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Year")

	out, err = execute(t, "archive", "--json")
	require.NoError(t, err)
	var rows []views.ArchiveRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 9)
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "build", "-o", dir, "--reduced-motion")
	require.NoError(t, err)
	assert.Contains(t, out, "Built")

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(index), "data-reveal")
	assert.FileExists(t, filepath.Join(dir, "projects", "8", "index.html"))
}

func TestBuildWatchNeedsContentDir(t *testing.T) {
	t.Setenv("CONTENT_DIR", "")
	_, err := execute(t, "build", "-o", t.TempDir(), "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --content")
}

func TestContentFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.yaml"), []byte("projects:\n  - title: Only one\n    date: \"2021\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.yaml"), []byte("name: Test\n"), 0o644))

	out, err := execute(t, "archive", "--content", dir, "--json")
	require.NoError(t, err)
	var rows []views.ArchiveRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Only one", rows[0].Title)
	assert.Equal(t, "2021", rows[0].Year)

	_, err = execute(t, "archive", "--content", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
