package emit

import (
	"fmt"

	"github.com/roach88/qsgal/internal/ir"
)

// Output is the result of emitting one target.
type Output struct {
	Target   Target
	Manifest *ir.Manifest // manifest and wasm targets
	Mesh     string       // obj target
}

// Bytes returns the printable form of the output.
func (o *Output) Bytes() ([]byte, error) {
	if o.Manifest != nil {
		return MarshalManifest(*o.Manifest)
	}
	return []byte(o.Mesh), nil
}

// Hash returns the content hash of the output, used to key build records.
func (o *Output) Hash() (string, error) {
	if o.Manifest != nil {
		return ir.ManifestHash(*o.Manifest)
	}
	return ir.MeshHash(o.Mesh), nil
}

// Emit renders prog for the given target. Manifests are checked against the
// manifest schema before they are returned.
func Emit(prog *ir.IR, target Target) (*Output, error) {
	switch target {
	case TargetManifest, TargetWasm:
		m := Manifest(prog)
		if err := CheckManifest(m); err != nil {
			return nil, fmt.Errorf("emit %s: %w", target, err)
		}
		return &Output{Target: target, Manifest: &m}, nil
	case TargetOBJ:
		return &Output{Target: target, Mesh: OBJ(prog)}, nil
	default:
		return nil, &UnknownTargetError{Target: string(target)}
	}
}
