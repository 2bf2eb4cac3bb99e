package compiler

import (
	"fmt"
	"strings"

	"github.com/roach88/qsgal/internal/ir"
)

// Declaration keywords. Only the leading token of a line is inspected.
const (
	KeywordRule      = "rule"
	KeywordPrimitive = "primitive"
	KeywordAttractor = "attractor"
)

// Values of the canonical entities each keyword declares.
const (
	GrowRuleName = "GROW"
	SeedName     = "Seed"
	RatioName    = "GR"
	GoldenRatio  = 1.618
)

// Parse converts QSGAL source text into a Program.
//
// Each line is trimmed and classified by its first whitespace-delimited
// token. A "rule" line appends the GROW rule, a "primitive" line appends
// the Seed tetrahedron and an "attractor" line appends the GR ratio.
// Anything following the keyword is ignored, as are lines with any other
// leading token.
//
// Returns a *ParseError with code E020 when no rule is declared and E030
// when more than ir.MaxRules are declared. On error the Program is nil.
func Parse(source string) (*ir.Program, error) {
	prog := &ir.Program{}
	overflowLine := 0

	for i, line := range strings.Split(source, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case KeywordRule:
			prog.Rules = append(prog.Rules, growRule())
			if len(prog.Rules) == ir.MaxRules+1 {
				overflowLine = i + 1
			}
		case KeywordPrimitive:
			prog.Primitives = append(prog.Primitives, ir.Primitive{
				Name:     SeedName,
				Geometry: ir.GeometryTetrahedron,
			})
		case KeywordAttractor:
			prog.Attractors = append(prog.Attractors, ir.Attractor{
				Name:  RatioName,
				Value: GoldenRatio,
				Kind:  ir.KindRatio,
			})
		}
	}

	if len(prog.Rules) == 0 {
		return nil, &ParseError{
			Code:    ErrNoEntryRule,
			Message: "no entry rule",
		}
	}
	if len(prog.Rules) > ir.MaxRules {
		return nil, &ParseError{
			Code:    ErrRecursionLimit,
			Message: fmt.Sprintf("recursion limit exceeded: %d rules declared, at most %d allowed", len(prog.Rules), ir.MaxRules),
			Line:    overflowLine,
		}
	}

	return prog, nil
}

func growRule() ir.Rule {
	return ir.Rule{
		Name: GrowRuleName,
		States: []ir.State{{
			Commands: []ir.Command{{Op: ir.OpScale, Value: GoldenRatio}},
		}},
	}
}
