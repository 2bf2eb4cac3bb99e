package store

import (
	"context"
	"fmt"
)

// RecordBuild inserts a build, replacing any earlier row with the same ID.
// The row receives the next seq value; the stored build is returned.
func (s *Store) RecordBuild(ctx context.Context, b Build) (Build, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO builds
		(id, run_id, seq, source_path, source_hash, target, output_hash,
		 rule_count, primitive_count, attractor_count, compiler_version, ir_version)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM builds), ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.ID,
		b.RunID,
		b.SourcePath,
		b.SourceHash,
		b.Target,
		b.OutputHash,
		b.RuleCount,
		b.PrimitiveCount,
		b.AttractorCount,
		b.CompilerVersion,
		b.IRVersion,
	)
	if err != nil {
		return Build{}, fmt.Errorf("record build: %w", err)
	}

	stored, err := s.GetBuild(ctx, b.ID)
	if err != nil {
		return Build{}, fmt.Errorf("record build: %w", err)
	}
	return stored, nil
}
