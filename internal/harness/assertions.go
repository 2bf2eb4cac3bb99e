package harness

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/qsgal/internal/ir"
)

// evaluate checks a result against the scenario's expectations and
// returns one message per failed expectation.
func evaluate(s *Scenario, r *Result) []string {
	exp := s.Expect

	if exp.Error != "" {
		if r.Err == nil {
			return []string{fmt.Sprintf("expected error %s, got success", exp.Error)}
		}
		if r.ErrCode != exp.Error {
			return []string{fmt.Sprintf("expected error %s, got %v", exp.Error, r.Err)}
		}
		return nil
	}

	if r.Err != nil {
		return []string{fmt.Sprintf("unexpected error: %v", r.Err)}
	}

	var failures []string
	if len(exp.Commands) > 0 {
		failures = append(failures, assertCommands(exp.Commands, r.Output)...)
	}
	if exp.VertexCount != nil {
		if got := len(vertexLines(r.Output)); got != *exp.VertexCount {
			failures = append(failures, fmt.Sprintf("expected %d vertex lines, got %d", *exp.VertexCount, got))
		}
	}
	if len(exp.OBJPrefix) > 0 {
		failures = append(failures, assertOBJPrefix(exp.OBJPrefix, r.Output)...)
	}
	if len(exp.Lines) > 0 {
		failures = append(failures, assertLines(exp.Lines, r.Output)...)
	}
	return failures
}

// assertCommands decodes a manifest from output and compares its commands.
func assertCommands(want []ExpectCommand, output string) []string {
	var m ir.Manifest
	if err := json.Unmarshal([]byte(output), &m); err != nil {
		return []string{fmt.Sprintf("output is not a manifest: %v", err)}
	}

	if len(m.Commands) != len(want) {
		return []string{fmt.Sprintf("expected %d commands, got %d", len(want), len(m.Commands))}
	}

	var failures []string
	for i, w := range want {
		got := m.Commands[i]
		if string(got.Op) != w.Op || got.Value != w.Value {
			failures = append(failures, fmt.Sprintf("commands[%d]: expected {%s %v}, got {%s %v}", i, w.Op, w.Value, got.Op, got.Value))
		}
	}
	return failures
}

func assertOBJPrefix(want []string, output string) []string {
	got := vertexLines(output)
	if len(got) < len(want) {
		return []string{fmt.Sprintf("expected at least %d vertex lines, got %d", len(want), len(got))}
	}

	var failures []string
	for i, w := range want {
		if got[i] != w {
			failures = append(failures, fmt.Sprintf("vertex[%d]: expected %q, got %q", i, w, got[i]))
		}
	}
	return failures
}

func assertLines(want []string, output string) []string {
	got := outputLines(output)
	if len(got) != len(want) {
		return []string{fmt.Sprintf("expected %d output lines, got %d", len(want), len(got))}
	}

	var failures []string
	for i, w := range want {
		if got[i] != w {
			failures = append(failures, fmt.Sprintf("line %d: expected %q, got %q", i+1, w, got[i]))
		}
	}
	return failures
}

func vertexLines(output string) []string {
	var out []string
	for _, line := range outputLines(output) {
		if strings.HasPrefix(line, "v ") {
			out = append(out, line)
		}
	}
	return out
}

func outputLines(output string) []string {
	trimmed := strings.TrimSuffix(output, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
