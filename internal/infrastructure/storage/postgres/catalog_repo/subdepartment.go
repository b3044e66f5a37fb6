package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/subdepartment"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

const subDepartmentTable = "cat_sub_departments"

// Compile-time check.
var _ subdepartment.Repository = (*SubDepartmentRepo)(nil)

// SubDepartmentRepo implements subdepartment.Repository.
type SubDepartmentRepo struct {
	*BaseCatalogRepo[*subdepartment.SubDepartment]
}

// NewSubDepartmentRepo creates a new sub-department repository.
func NewSubDepartmentRepo(txManager *postgres.TxManager) *SubDepartmentRepo {
	return &SubDepartmentRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			subDepartmentTable,
			postgres.ExtractDBColumns[subdepartment.SubDepartment](),
			func() *subdepartment.SubDepartment { return &subdepartment.SubDepartment{} },
		),
	}
}

// ExistsByNameInDepartment checks name uniqueness within a department.
func (r *SubDepartmentRepo) ExistsByNameInDepartment(ctx context.Context, name string, departmentID, excludeID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(subDepartmentTable).
		Where(squirrel.Expr("lower(name) = lower(?)", name)).
		Where(squirrel.Eq{"department_id": departmentID}).
		Where(squirrel.Eq{"active": true}).
		Limit(1)

	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	return r.ScanExists(ctx, q, "exists by name in department")
}

// ListByDepartment retrieves active sub-departments of one department.
func (r *SubDepartmentRepo) ListByDepartment(ctx context.Context, departmentID id.ID) ([]*subdepartment.SubDepartment, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[subdepartment.SubDepartment]()...).
		From(subDepartmentTable).
		Where(squirrel.Eq{"department_id": departmentID}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC")

	return r.FindMany(ctx, q)
}
