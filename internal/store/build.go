package store

import (
	"github.com/google/uuid"

	"github.com/roach88/qsgal/internal/ir"
)

// Build is one row of the build ledger.
type Build struct {
	ID              string `json:"id"`
	RunID           string `json:"run_id"`
	Seq             int64  `json:"seq"`
	SourcePath      string `json:"source_path"`
	SourceHash      string `json:"source_hash"`
	Target          string `json:"target"`
	OutputHash      string `json:"output_hash"`
	RuleCount       int    `json:"rule_count"`
	PrimitiveCount  int    `json:"primitive_count"`
	AttractorCount  int    `json:"attractor_count"`
	CompilerVersion string `json:"compiler_version"`
	IRVersion       string `json:"ir_version"`
}

// NewBuild describes compiling source (read from path) to target.
// outputHash identifies the emitted output. Seq is assigned by RecordBuild.
func NewBuild(path, source, target, outputHash string, prog *ir.IR) Build {
	sourceHash := ir.SourceHash(source)
	return Build{
		ID:              ir.BuildID(sourceHash, target),
		RunID:           uuid.Must(uuid.NewV7()).String(),
		SourcePath:      path,
		SourceHash:      sourceHash,
		Target:          target,
		OutputHash:      outputHash,
		RuleCount:       len(prog.Rules),
		PrimitiveCount:  len(prog.Primitives),
		AttractorCount:  len(prog.Attractors),
		CompilerVersion: ir.CompilerVersion,
		IRVersion:       ir.IRVersion,
	}
}
