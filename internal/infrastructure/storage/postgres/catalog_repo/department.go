package catalog_repo

import (
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/department"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

const departmentTable = "cat_departments"

// Compile-time check.
var _ department.Repository = (*DepartmentRepo)(nil)

// DepartmentRepo implements department.Repository.
type DepartmentRepo struct {
	*BaseCatalogRepo[*department.Department]
}

// NewDepartmentRepo creates a new department repository.
func NewDepartmentRepo(txManager *postgres.TxManager) *DepartmentRepo {
	return &DepartmentRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			departmentTable,
			postgres.ExtractDBColumns[department.Department](),
			func() *department.Department { return &department.Department{} },
		),
	}
}
