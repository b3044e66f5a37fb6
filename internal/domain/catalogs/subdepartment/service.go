package subdepartment

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/core/tx"
	"github.com/Haarizz/inventory-registries/internal/domain"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/department"
)

// Service provides business logic for the SubDepartment catalog.
type Service struct {
	*domain.CatalogService[*SubDepartment]
	repo           Repository
	departmentRepo department.Repository
}

// NewService creates a new SubDepartment service.
func NewService(repo Repository, departmentRepo department.Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*SubDepartment]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "sub-department",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		departmentRepo: departmentRepo,
	}

	base.Hooks().OnBeforeCreate(svc.prepare)
	base.Hooks().OnBeforeUpdate(svc.prepare)

	return svc
}

// prepare validates the department reference and name uniqueness within it.
func (s *Service) prepare(ctx context.Context, sub *SubDepartment) error {
	ok, err := s.departmentRepo.Exists(ctx, sub.DepartmentID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("department", sub.DepartmentID.String())
	}

	exists, err := s.repo.ExistsByNameInDepartment(ctx, sub.Name, sub.DepartmentID, sub.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("sub-department", "name", sub.Name).
			WithDetail("department_id", sub.DepartmentID.String())
	}

	return nil
}

// ListByDepartment retrieves active sub-departments of one department.
func (s *Service) ListByDepartment(ctx context.Context, departmentID id.ID) ([]*SubDepartment, error) {
	return s.repo.ListByDepartment(ctx, departmentID)
}
