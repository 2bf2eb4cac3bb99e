package compiler

import (
	"fmt"

	"github.com/roach88/qsgal/internal/ir"
)

// Advisory diagnostic codes (W100-W199). None of these fail a compile.
const (
	WarnDuplicateRule      = "W101" // two rules share a name
	WarnDuplicatePrimitive = "W102" // two primitives share a name
	WarnDuplicateAttractor = "W103" // two attractors share a name
	WarnUnknownTag         = "W104" // op, geometry or kind outside the known set
)

// Diagnostic is a non-fatal finding about an IR.
type Diagnostic struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// String formats the diagnostic for log output.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Code, d.Field, d.Message)
}

// Check inspects an IR and returns every advisory diagnostic found.
// Name collisions are reported, not rejected. The entities Parse declares
// (GROW, Seed, GR) repeat once per keyword line and are exempt from the
// collision checks.
func Check(prog *ir.IR) []Diagnostic {
	var diags []Diagnostic

	ruleNames := make(map[string]int)
	for i, rule := range prog.Rules {
		if first, seen := ruleNames[rule.Name]; seen && rule.Name != GrowRuleName {
			diags = append(diags, Diagnostic{
				Field:   fmt.Sprintf("rules[%d].name", i),
				Message: fmt.Sprintf("rule %q already declared at rules[%d]", rule.Name, first),
				Code:    WarnDuplicateRule,
			})
		} else {
			ruleNames[rule.Name] = i
		}

		for j, state := range rule.States {
			for k, cmd := range state.Commands {
				if !cmd.Op.Valid() {
					diags = append(diags, Diagnostic{
						Field:   fmt.Sprintf("rules[%d].states[%d].commands[%d].op", i, j, k),
						Message: fmt.Sprintf("unknown op %q", cmd.Op),
						Code:    WarnUnknownTag,
					})
				}
			}
		}
	}

	primNames := make(map[string]int)
	for i, prim := range prog.Primitives {
		if first, seen := primNames[prim.Name]; seen && prim.Name != SeedName {
			diags = append(diags, Diagnostic{
				Field:   fmt.Sprintf("primitives[%d].name", i),
				Message: fmt.Sprintf("primitive %q already declared at primitives[%d]", prim.Name, first),
				Code:    WarnDuplicatePrimitive,
			})
		} else {
			primNames[prim.Name] = i
		}
		if !prim.Geometry.Valid() {
			diags = append(diags, Diagnostic{
				Field:   fmt.Sprintf("primitives[%d].geometry", i),
				Message: fmt.Sprintf("unknown geometry %q", prim.Geometry),
				Code:    WarnUnknownTag,
			})
		}
	}

	attrNames := make(map[string]int)
	for i, attr := range prog.Attractors {
		if first, seen := attrNames[attr.Name]; seen && attr.Name != RatioName {
			diags = append(diags, Diagnostic{
				Field:   fmt.Sprintf("attractors[%d].name", i),
				Message: fmt.Sprintf("attractor %q already declared at attractors[%d]", attr.Name, first),
				Code:    WarnDuplicateAttractor,
			})
		} else {
			attrNames[attr.Name] = i
		}
		if !attr.Kind.Valid() {
			diags = append(diags, Diagnostic{
				Field:   fmt.Sprintf("attractors[%d].kind", i),
				Message: fmt.Sprintf("unknown kind %q", attr.Kind),
				Code:    WarnUnknownTag,
			})
		}
	}

	return diags
}
