package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/roach88/qsgal/internal/ir"
)

// createTestStore creates a new store backed by a temporary file.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestBuild creates a build for source compiled to target.
func createTestBuild(source, target string) Build {
	prog := &ir.IR{
		Rules:      []ir.Rule{{Name: "GROW"}},
		Primitives: []ir.Primitive{{Name: "Seed", Geometry: ir.GeometryTetrahedron}},
	}
	return NewBuild("input.qsg", source, target, "output-hash", prog)
}

func getTableColumns(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()

	rows, err := db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		t.Fatalf("failed to get table info for %q: %v", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			t.Fatalf("failed to scan column info: %v", err)
		}
		columns = append(columns, name)
	}
	return columns
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
