package notification_repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/domain/notification"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

// migrationColumns extracts the column names of one CREATE TABLE block
// from the initial migration.
func migrationColumns(t *testing.T, table string) map[string]struct{} {
	t.Helper()

	path := filepath.Join("..", "..", "..", "..", "..", "migrations", "001_init.up.sql")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	marker := "CREATE TABLE " + table + " ("
	idx := strings.Index(string(raw), marker)
	require.GreaterOrEqual(t, idx, 0, "table %s not found in migration", table)

	cols := make(map[string]struct{})
	for _, line := range strings.Split(string(raw)[idx+len(marker):], "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ");") {
			break
		}
		if line == "" {
			continue
		}
		name := strings.Fields(line)[0]
		if name != strings.ToLower(name) {
			// table-level constraint, not a column
			continue
		}
		cols[name] = struct{}{}
	}
	return cols
}

// The repository builds INSERT and SELECT column lists from the entity's
// db tags, so every mapped column must exist in the table definition.
func TestNotificationColumnsExistInSchema(t *testing.T) {
	ddl := migrationColumns(t, "notifications")

	for _, col := range postgres.ExtractDBColumns[notification.Notification]() {
		_, ok := ddl[col]
		require.True(t, ok, "column %q is mapped on the entity but missing from the notifications table", col)
	}
}
