// Package subdepartment provides the SubDepartment reference catalog.
// A sub-department always belongs to exactly one department.
package subdepartment

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// SubDepartment represents a second-level product grouping.
type SubDepartment struct {
	entity.Catalog

	// DepartmentID is the owning department (required)
	DepartmentID id.ID `db:"department_id" json:"departmentId"`
}

// NewSubDepartment creates a new SubDepartment with required fields.
func NewSubDepartment(name string, departmentID id.ID) *SubDepartment {
	return &SubDepartment{
		Catalog:      entity.NewCatalog(name),
		DepartmentID: departmentID,
	}
}

// Validate implements entity.Validatable interface.
func (s *SubDepartment) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(s.DepartmentID) {
		return apperror.NewValidation("department is required").
			WithDetail("field", "departmentId")
	}

	return nil
}
