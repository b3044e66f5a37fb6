// Package department provides the Department reference catalog.
// Departments group products at the top level; sub-departments refine them.
package department

import (
	"github.com/Haarizz/inventory-registries/internal/core/entity"
)

// Department represents a top-level product grouping.
type Department struct {
	entity.Catalog
}

// NewDepartment creates a new Department with required fields.
func NewDepartment(name string) *Department {
	return &Department{
		Catalog: entity.NewCatalog(name),
	}
}
