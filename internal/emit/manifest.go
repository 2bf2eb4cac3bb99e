package emit

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/qsgal/internal/ir"
)

// Manifest returns the demonstration command sequence: scale by the golden
// ratio, then rotate 180 degrees about X. The IR is not consulted.
func Manifest(_ *ir.IR) ir.Manifest {
	return ir.Manifest{
		Commands: []ir.Command{
			{Op: ir.OpScale, Value: 1.618},
			{Op: ir.OpRotateX, Value: 180.0},
		},
	}
}

// MarshalManifest renders a manifest as two-space indented JSON followed by
// a newline.
func MarshalManifest(m ir.Manifest) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}
