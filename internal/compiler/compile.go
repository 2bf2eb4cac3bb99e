package compiler

import (
	"io"
	"log/slog"

	"github.com/roach88/qsgal/internal/ir"
)

// ConformanceLines are printed by a successful validate run.
var ConformanceLines = []string{
	"✓ syntax: ok",
	"✓ entry rule: ok",
	"✓ recursion limit: ok",
}

// Options configures a compile run.
type Options struct {
	// Logger receives stage progress at DEBUG and diagnostics at WARN.
	// Nil discards all output.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Compile parses and analyzes source text.
// Diagnostics from Check are logged and never cause failure.
func Compile(source string, opts Options) (*ir.IR, error) {
	log := opts.logger()

	prog, err := Parse(source)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return nil, err
	}
	log.Debug("parsed program",
		"rules", len(prog.Rules),
		"primitives", len(prog.Primitives),
		"attractors", len(prog.Attractors),
	)

	out, err := Analyze(*prog)
	if err != nil {
		return nil, err
	}

	for _, d := range Check(out) {
		log.Warn("diagnostic", "code", d.Code, "field", d.Field, "message", d.Message)
	}

	return out, nil
}
