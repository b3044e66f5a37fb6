package product

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/core/tx"
	"github.com/Haarizz/inventory-registries/internal/domain"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/brand"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/subdepartment"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/unit"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo              Repository
	brandRepo         brand.Repository
	subDepartmentRepo subdepartment.Repository
	unitRepo          unit.Repository
}

// NewService creates a new Product service.
func NewService(
	repo Repository,
	brandRepo brand.Repository,
	subDepartmentRepo subdepartment.Repository,
	unitRepo unit.Repository,
	txManager tx.Manager,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService:    base,
		repo:              repo,
		brandRepo:         brandRepo,
		subDepartmentRepo: subDepartmentRepo,
		unitRepo:          unitRepo,
	}

	base.Hooks().OnBeforeCreate(svc.prepare)
	base.Hooks().OnBeforeUpdate(svc.prepare)

	return svc
}

// prepare validates catalog references and code uniqueness.
func (s *Service) prepare(ctx context.Context, p *Product) error {
	if err := s.checkReference(ctx, "brand", s.brandRepo.Exists, p.BrandID); err != nil {
		return err
	}
	if err := s.checkReference(ctx, "sub-department", s.subDepartmentRepo.Exists, p.SubDepartmentID); err != nil {
		return err
	}
	if err := s.checkReference(ctx, "unit", s.unitRepo.Exists, p.UnitID); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByCode(ctx, p.Code, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("product", "code", p.Code)
	}

	return nil
}

func (s *Service) checkReference(ctx context.Context, name string, exists func(context.Context, id.ID) (bool, error), refID id.ID) error {
	ok, err := exists(ctx, refID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound(name, refID.String())
	}
	return nil
}

// GetByCode retrieves an active product by its code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Product, error) {
	return s.repo.FindByCode(ctx, code)
}

// ListBelowReorderLevel returns active products needing restocking.
func (s *Service) ListBelowReorderLevel(ctx context.Context) ([]*Product, error) {
	return s.repo.ListBelowReorderLevel(ctx)
}
