package subdepartment

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Repository defines the interface for SubDepartment persistence.
type Repository interface {
	domain.CatalogRepository[*SubDepartment]

	// ExistsByNameInDepartment checks name uniqueness within a department.
	ExistsByNameInDepartment(ctx context.Context, name string, departmentID, excludeID id.ID) (bool, error)

	// ListByDepartment retrieves active sub-departments of one department.
	ListByDepartment(ctx context.Context, departmentID id.ID) ([]*SubDepartment, error)
}
