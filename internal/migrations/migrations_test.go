package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_ArePaired(t *testing.T) {
	names, err := fs.Glob(MigrationFiles, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file %q", name)
		}
	}
	require.Equal(t, ups, downs)
}

func TestBaselineMigration_DeclaresEventRelations(t *testing.T) {
	raw, err := fs.ReadFile(MigrationFiles, "000001_create_events.up.sql")
	require.NoError(t, err)

	sql := string(raw)
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS messages")
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS modlogs")
	require.Contains(t, sql, "CHECK (type IN ('warn', 'mute'))")
	require.Contains(t, sql, "BEFORE UPDATE OR DELETE ON messages")
}
