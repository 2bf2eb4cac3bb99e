package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const growSource = "rule grow\nprimitive seed\nattractor ratio\n"

// writeSource writes a QSGAL program to a temp file and returns its path.
func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.qsgal")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// manyRules returns a program declaring n rules.
func manyRules(n int) string {
	return strings.Repeat("rule r\n", n)
}

// execute runs cmd with args and returns its stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
