package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/entity"
)

func newTestRepo() *BaseCatalogRepo[*entity.Catalog] {
	return NewBaseCatalogRepo(
		nil,
		"cat_test",
		[]string{"id", "name", "description", "active", "version"},
		func() *entity.Catalog { return &entity.Catalog{} },
	)
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{"empty defaults to name", "", "name ASC", false},
		{"plain field", "name", "name ASC", false},
		{"descending prefix", "-name", "name DESC", false},
		{"ascending prefix", "+version", "version ASC", false},
		{"id is always allowed", "id", "id ASC", false},

		{"unknown column", "password", "", true},
		{"injection attempt", "name; DROP TABLE users", "", true},
		{"bare minus", "-", "", true},
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
