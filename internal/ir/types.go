package ir

// MaxRules is the upper bound on rule declarations in one program.
const MaxRules = 32

// Program is the parsed, unvalidated form of a QSGAL source file.
// A Program returned by the parser is never mutated afterwards.
type Program struct {
	Rules      []Rule      `json:"rules"`
	Primitives []Primitive `json:"primitives"`
	Attractors []Attractor `json:"attractors"`
}

// IR is the validated, emit-ready form produced by semantic analysis.
// It has the same shape as Program.
type IR struct {
	Rules      []Rule      `json:"rules"`
	Primitives []Primitive `json:"primitives"`
	Attractors []Attractor `json:"attractors"`
}

// Rule is one named production in the DSL.
type Rule struct {
	Name   string  `json:"name"`
	States []State `json:"states"`
}

// State is an ordered group of commands within a rule.
type State struct {
	Commands []Command `json:"commands"`
}

// Command is a single operation with one numeric operand.
type Command struct {
	Op    Op      `json:"op"`
	Value float64 `json:"value"`
}

// Primitive is a named reference to a base shape.
type Primitive struct {
	Name     string   `json:"name"`
	Geometry Geometry `json:"geometry"`
}

// Attractor is a named numeric constant referenced by rules.
type Attractor struct {
	Name  string        `json:"name"`
	Value float64       `json:"value"`
	Kind  AttractorKind `json:"kind"`
}

// Manifest is the flattened command list produced by the manifest and
// wasm targets.
type Manifest struct {
	Commands []Command `json:"commands"`
}

// Clone returns a deep copy of the rule.
func (r Rule) Clone() Rule {
	out := Rule{Name: r.Name}
	if r.States != nil {
		out.States = make([]State, len(r.States))
		for i, s := range r.States {
			out.States[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	if s.Commands == nil {
		return State{}
	}
	return State{Commands: append([]Command(nil), s.Commands...)}
}

// CommandCount returns the total number of commands across all states.
func (r Rule) CommandCount() int {
	n := 0
	for _, s := range r.States {
		n += len(s.Commands)
	}
	return n
}
