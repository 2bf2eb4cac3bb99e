package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/qsgal/internal/emit"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Source is the QSGAL program text. May be empty.
	Source string `yaml:"source"`

	// Command is the pipeline to run: compile, validate or emit.
	Command string `yaml:"command"`

	// Target is the emit target. Only used by the emit command.
	// Unknown names are allowed so UnknownTarget can be exercised.
	Target string `yaml:"target,omitempty"`

	// Expect describes the required outcome.
	Expect Expect `yaml:"expect"`
}

// Expect specifies expected pipeline behavior.
type Expect struct {
	// Error is the expected error code (E020, E030, UnknownTarget).
	// Empty means the run must succeed.
	Error string `yaml:"error,omitempty"`

	// Commands are the expected manifest commands, in order.
	Commands []ExpectCommand `yaml:"commands,omitempty"`

	// VertexCount is the expected number of OBJ "v" lines.
	VertexCount *int `yaml:"vertex_count,omitempty"`

	// OBJPrefix lists the expected leading OBJ vertex lines.
	OBJPrefix []string `yaml:"obj_prefix,omitempty"`

	// Lines are the exact expected output lines.
	Lines []string `yaml:"lines,omitempty"`
}

// ExpectCommand is one expected manifest command.
type ExpectCommand struct {
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value"`
}

// Command names.
const (
	CommandCompile  = "compile"
	CommandValidate = "validate"
	CommandEmit     = "emit"
)

func (e Expect) isEmpty() bool {
	return e.Error == "" && len(e.Commands) == 0 && e.VertexCount == nil &&
		len(e.OBJPrefix) == 0 && len(e.Lines) == 0
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict decoding catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Command {
	case CommandCompile, CommandValidate:
		if s.Target != "" {
			return fmt.Errorf("target is only valid for the %s command", CommandEmit)
		}
	case CommandEmit:
	case "":
		return fmt.Errorf("command is required")
	default:
		return fmt.Errorf("unknown command %q", s.Command)
	}

	if s.Expect.isEmpty() {
		return fmt.Errorf("expect must contain at least one expectation")
	}

	if s.Expect.VertexCount != nil && *s.Expect.VertexCount < 0 {
		return fmt.Errorf("expect.vertex_count must be non-negative")
	}

	for i, c := range s.Expect.Commands {
		if c.Op == "" {
			return fmt.Errorf("expect.commands[%d]: op is required", i)
		}
	}

	return nil
}

// target returns the emit target name, applying the default.
func (s *Scenario) target() string {
	if s.Target == "" {
		return string(emit.DefaultTarget)
	}
	return s.Target
}
