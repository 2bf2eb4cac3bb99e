package emit

import (
	"strconv"
	"strings"

	"github.com/roach88/qsgal/internal/ir"
)

// MeshHeader is the comment line that opens every OBJ document.
const MeshHeader = "# qsgal dual-cube mesh"

// meshPhi scales the outer cube.
const meshPhi = 1.618

var cubeSigns = [2]float64{-1.0, 1.0}

// OBJ returns a dual-cube mesh: the eight corners of the unit cube followed
// by the same corners scaled by 1.618. Corners are enumerated with x
// varying slowest and z fastest. The IR is not consulted.
func OBJ(_ *ir.IR) string {
	var b strings.Builder
	b.WriteString(MeshHeader)
	b.WriteByte('\n')

	for _, scale := range [2]float64{1.0, meshPhi} {
		for _, x := range cubeSigns {
			for _, y := range cubeSigns {
				for _, z := range cubeSigns {
					writeVertex(&b, x*scale, y*scale, z*scale)
				}
			}
		}
	}

	return b.String()
}

func writeVertex(b *strings.Builder, x, y, z float64) {
	b.WriteString("v ")
	b.WriteString(formatCoord(x))
	b.WriteByte(' ')
	b.WriteString(formatCoord(y))
	b.WriteByte(' ')
	b.WriteString(formatCoord(z))
	b.WriteByte('\n')
}

// formatCoord prints the shortest decimal that round-trips, without exponent.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
