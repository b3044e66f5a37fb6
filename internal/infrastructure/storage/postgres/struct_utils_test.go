package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

type MockCatalog struct {
	entity.Catalog
	Code   string `db:"code" json:"code"`
	Hidden string `db:"-" json:"-"`
	NoTag  string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{"id", "active", "version", "name", "description", "code"}
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}

	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Hidden")
	assert.NotContains(t, cols, "NoTag")
}

func TestExtractDBColumnsPointer(t *testing.T) {
	assert.Equal(t, ExtractDBColumns[MockCatalog](), ExtractDBColumns[*MockCatalog]())
}

func TestStructToMap(t *testing.T) {
	desc := "test description"
	cat := MockCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:      id.New(),
				Active:  true,
				Version: 5,
			},
			Name:        "Test Name",
			Description: &desc,
		},
		Code:   "TEST",
		Hidden: "secret",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["active"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, &desc, m["description"])
	assert.Equal(t, "TEST", m["code"])
	assert.NotContains(t, m, "-")
}

func TestStructToMapPointer(t *testing.T) {
	cat := &MockCatalog{Catalog: entity.NewCatalog("Ptr"), Code: "P1"}

	m := StructToMap(cat)
	assert.Equal(t, "Ptr", m["name"])
	assert.Equal(t, "P1", m["code"])
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("string"))
}
