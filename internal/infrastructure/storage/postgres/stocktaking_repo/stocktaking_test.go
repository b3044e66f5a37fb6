package stocktaking_repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/domain/stocktaking"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

func TestParseOrderBy(t *testing.T) {
	repo := NewStockTakingRepo(nil)

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{"empty defaults to newest first", "", "created_at DESC", false},
		{"variance ascending", "variance", "variance ASC", false},
		{"created_at descending", "-created_at", "created_at DESC", false},
		{"status ascending prefix", "+status", "status ASC", false},

		{"unknown column", "remarks", "", true},
		{"injection attempt", "status; --", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The repository builds its INSERT and SELECT column lists from the
// entity's db tags, so every mapped column must exist in the table
// definition.
func TestStockTakingColumnsExistInSchema(t *testing.T) {
	path := filepath.Join("..", "..", "..", "..", "..", "migrations", "001_init.up.sql")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	marker := "CREATE TABLE doc_stock_takings ("
	idx := strings.Index(string(raw), marker)
	require.GreaterOrEqual(t, idx, 0)

	ddl := make(map[string]struct{})
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
			continue
		}
		ddl[name] = struct{}{}
	}

	for _, col := range postgres.ExtractDBColumns[stocktaking.StockTaking]() {
		_, ok := ddl[col]
		require.True(t, ok, "column %q is mapped on the entity but missing from the doc_stock_takings table", col)
	}
}
