package store

import (
	"fmt"
	"strings"
)

// Predicate is a filter over build ledger rows.
//
// This is a sealed interface: only Equals and And implement it, so
// compilePredicate can switch over every case.
type Predicate interface {
	predicateNode()
}

// Equals matches rows whose column equals a value.
type Equals struct {
	Column string
	Value  any
}

func (Equals) predicateNode() {}

// And matches rows satisfying every predicate. An empty And matches all rows.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// filterColumns lists the columns a predicate may reference.
var filterColumns = map[string]bool{
	"id":               true,
	"run_id":           true,
	"source_path":      true,
	"source_hash":      true,
	"target":           true,
	"output_hash":      true,
	"compiler_version": true,
	"ir_version":       true,
}

// TargetIs matches builds emitted for target.
func TargetIs(target string) Predicate {
	return Equals{Column: "target", Value: target}
}

// SourcePathIs matches builds read from path.
func SourcePathIs(path string) Predicate {
	return Equals{Column: "source_path", Value: path}
}

// compileQuery builds a parameterized SELECT over builds. Values are never
// interpolated. Every query carries the ledger's stable order.
func compileQuery(p Predicate) (string, []any, error) {
	var where string
	var params []any
	if p != nil {
		clause, ps, err := compilePredicate(p)
		if err != nil {
			return "", nil, fmt.Errorf("compile filter: %w", err)
		}
		where = " WHERE " + clause
		params = ps
	}
	query := "SELECT " + buildColumns + " FROM builds" + where +
		" ORDER BY seq ASC, id COLLATE BINARY ASC"
	return query, params, nil
}

func compilePredicate(p Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case Equals:
		if !filterColumns[pred.Column] {
			return "", nil, fmt.Errorf("unknown column %q", pred.Column)
		}
		return pred.Column + " = ?", []any{pred.Value}, nil
	case And:
		if len(pred.Predicates) == 0 {
			return "1 = 1", nil, nil
		}
		parts := make([]string, 0, len(pred.Predicates))
		var params []any
		for _, sub := range pred.Predicates {
			clause, ps, err := compilePredicate(sub)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, clause)
			params = append(params, ps...)
		}
		return strings.Join(parts, " AND "), params, nil
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}
