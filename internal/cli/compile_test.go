package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/qsgal/internal/ir"
	"github.com/roach88/qsgal/internal/store"
)

const growManifest = `{
  "commands": [
    {
      "op": "scale",
      "value": 1.618
    },
    {
      "op": "rotate_x",
      "value": 180
    }
  ]
}
`

func TestCompilePrintsManifest(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "text"})

	out, errOut, err := execute(cmd, writeSource(t, growSource))
	require.NoError(t, err)
	assert.Equal(t, growManifest, out)
	assert.Empty(t, errOut)
}

func TestCompileJSON(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "json"})

	out, _, err := execute(cmd, writeSource(t, growSource))
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   ir.Manifest `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []ir.Command{
		{Op: ir.OpScale, Value: 1.618},
		{Op: ir.OpRotateX, Value: 180},
	}, resp.Data.Commands)
}

func TestCompileOutputToFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.json")
	cmd := NewCompileCommand(&RootOptions{Format: "text"})

	out, _, err := execute(cmd, writeSource(t, growSource), "-o", outFile)
	require.NoError(t, err)
	assert.Equal(t, growManifest, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, growManifest, string(data))
}

func TestCompileNoEntryRule(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "text"})

	out, errOut, err := execute(cmd, writeSource(t, "primitive seed\nattractor ratio\n"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E020")
	assert.Empty(t, out)
	assert.Equal(t, "Error [E020]: no entry rule\n", errOut)
}

func TestCompileNoEntryRuleJSON(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "json"})

	out, _, err := execute(cmd, writeSource(t, ""))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E020", resp.Error.Code)
	assert.Equal(t, "no entry rule", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}

func TestCompileRecursionLimit(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "text"})

	out, errOut, err := execute(cmd, writeSource(t, manyRules(40)))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error [E030]: line 33:")
}

func TestCompileExactlyMaxRules(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "text"})

	out, _, err := execute(cmd, writeSource(t, manyRules(ir.MaxRules)))
	require.NoError(t, err)
	assert.Equal(t, growManifest, out)
}

func TestCompileNonExistentFile(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "text"})

	_, errOut, err := execute(cmd, filepath.Join(t.TempDir(), "missing.qsgal"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "Error [E005]")
}

func TestCompileMissingArgs(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "text"})

	_, _, err := execute(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestCompileVerboseLogsToStderr(t *testing.T) {
	cmd := NewCompileCommand(&RootOptions{Format: "json", Verbose: true})

	out, errOut, err := execute(cmd, writeSource(t, growSource))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "stdout must stay valid JSON")
	assert.Contains(t, errOut, "parsed program")
	assert.Contains(t, errOut, "command=compile")
}

func TestCompileRecordsBuild(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "builds.db")
	src := writeSource(t, growSource)

	for i := 0; i < 2; i++ {
		cmd := NewCompileCommand(&RootOptions{Format: "text"})
		_, _, err := execute(cmd, src, "--db", dbPath)
		require.NoError(t, err)
	}

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	builds, err := st.ListBuilds(context.Background())
	require.NoError(t, err)
	require.Len(t, builds, 1, "recompiling the same source replaces its row")

	b := builds[0]
	assert.Equal(t, "manifest", b.Target)
	assert.Equal(t, src, b.SourcePath)
	assert.Equal(t, ir.SourceHash(growSource), b.SourceHash)
	assert.Equal(t, 1, b.RuleCount)
	assert.Equal(t, 1, b.PrimitiveCount)
	assert.Equal(t, 1, b.AttractorCount)
}
