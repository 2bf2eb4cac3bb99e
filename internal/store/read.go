package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a build does not exist.
var ErrNotFound = errors.New("build not found")

const buildColumns = `id, run_id, seq, source_path, source_hash, target, output_hash,
	rule_count, primitive_count, attractor_count, compiler_version, ir_version`

// GetBuild returns the build with the given ID.
func (s *Store) GetBuild(ctx context.Context, id string) (Build, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+buildColumns+` FROM builds WHERE id = ?`, id)
	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Build{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Build{}, fmt.Errorf("get build: %w", err)
	}
	return b, nil
}

// ListBuilds returns every build ordered by seq.
// Returns an empty slice (not nil) when the ledger is empty.
func (s *Store) ListBuilds(ctx context.Context) ([]Build, error) {
	return s.QueryBuilds(ctx, nil)
}

// QueryBuilds returns the builds matching filter ordered by seq.
// A nil filter matches every build.
func (s *Store) QueryBuilds(ctx context.Context, filter Predicate) ([]Build, error) {
	query, params, err := compileQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	builds := []Build{}
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate builds: %w", err)
	}

	return builds, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(sc scanner) (Build, error) {
	var b Build
	err := sc.Scan(
		&b.ID,
		&b.RunID,
		&b.Seq,
		&b.SourcePath,
		&b.SourceHash,
		&b.Target,
		&b.OutputHash,
		&b.RuleCount,
		&b.PrimitiveCount,
		&b.AttractorCount,
		&b.CompilerVersion,
		&b.IRVersion,
	)
	return b, err
}
