package compiler

import (
	"slices"

	"github.com/roach88/qsgal/internal/ir"
)

// Analyze validates a Program and lowers it to IR.
//
// The program is taken by value and the returned IR shares no backing
// storage with it. Every invariant is currently enforced by Parse, so
// Analyze always succeeds; the error return is where semantic checks land
// once they become fatal.
func Analyze(p ir.Program) (*ir.IR, error) {
	out := &ir.IR{
		Primitives: slices.Clone(p.Primitives),
		Attractors: slices.Clone(p.Attractors),
	}
	if p.Rules != nil {
		out.Rules = make([]ir.Rule, len(p.Rules))
		for i, r := range p.Rules {
			out.Rules[i] = r.Clone()
		}
	}
	return out, nil
}
