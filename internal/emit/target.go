package emit

import (
	"fmt"
	"strings"
)

// Target selects an output encoding.
type Target string

// Supported targets.
const (
	TargetManifest Target = "manifest"
	TargetOBJ      Target = "obj"
	TargetWasm     Target = "wasm"
)

// DefaultTarget is used when no target is given.
const DefaultTarget = TargetManifest

// Targets lists every supported target in display order.
var Targets = []Target{TargetManifest, TargetOBJ, TargetWasm}

// ErrCodeUnknownTarget is the error code reported for an unsupported target.
const ErrCodeUnknownTarget = "UnknownTarget"

// UnknownTargetError is returned when a target name is not supported.
type UnknownTargetError struct {
	Target string
}

// Error implements the error interface.
func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("%s: unknown target %q (want one of %s)", ErrCodeUnknownTarget, e.Target, targetList())
}

// ErrCode returns ErrCodeUnknownTarget.
func (e *UnknownTargetError) ErrCode() string {
	return ErrCodeUnknownTarget
}

// ParseTarget decodes a target name.
func ParseTarget(name string) (Target, error) {
	for _, t := range Targets {
		if string(t) == name {
			return t, nil
		}
	}
	return "", &UnknownTargetError{Target: name}
}

func targetList() string {
	names := make([]string, len(Targets))
	for i, t := range Targets {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
