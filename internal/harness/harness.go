package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/qsgal/internal/compiler"
	"github.com/roach88/qsgal/internal/emit"
)

// Result holds the outcome of running a scenario.
type Result struct {
	// Output is the printed output of a successful run.
	Output string

	// Err is the pipeline error of a failed run.
	Err error

	// ErrCode is the error code of Err, empty on success.
	ErrCode string

	// Pass is true when every expectation held.
	Pass bool

	// Errors lists each failed expectation.
	Errors []string
}

// Snapshot returns the text compared against golden files.
func (r *Result) Snapshot() []byte {
	if r.Err != nil {
		return []byte("error: " + r.Err.Error() + "\n")
	}
	return []byte(r.Output)
}

// Options configures scenario execution.
type Options struct {
	Logger *slog.Logger
}

// Run executes a scenario with default options.
func Run(s *Scenario) (*Result, error) {
	return RunWithOptions(s, Options{})
}

// RunWithOptions executes a scenario and evaluates its expectations.
// The returned error is reserved for malformed scenarios; pipeline
// failures are recorded on the Result.
func RunWithOptions(s *Scenario, opts Options) (*Result, error) {
	if err := validateScenario(s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("scenario", s.Name)

	output, err := execute(s, logger)

	result := &Result{Output: output, Err: err, ErrCode: compiler.ErrorCode(err)}
	result.Errors = evaluate(s, result)
	result.Pass = len(result.Errors) == 0

	logger.Debug("scenario finished", "pass", result.Pass, "failures", len(result.Errors))
	return result, nil
}

func execute(s *Scenario, logger *slog.Logger) (string, error) {
	switch s.Command {
	case CommandValidate:
		if _, err := compiler.Parse(s.Source); err != nil {
			return "", err
		}
		return strings.Join(compiler.ConformanceLines, "\n") + "\n", nil

	case CommandCompile:
		return compileAndEmit(s.Source, emit.TargetManifest, logger)

	case CommandEmit:
		target, err := emit.ParseTarget(s.target())
		if err != nil {
			return "", err
		}
		return compileAndEmit(s.Source, target, logger)
	}

	return "", fmt.Errorf("unknown command %q", s.Command)
}

func compileAndEmit(source string, target emit.Target, logger *slog.Logger) (string, error) {
	prog, err := compiler.Compile(source, compiler.Options{Logger: logger})
	if err != nil {
		return "", err
	}
	out, err := emit.Emit(prog, target)
	if err != nil {
		return "", err
	}
	data, err := out.Bytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
