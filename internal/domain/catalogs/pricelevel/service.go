package pricelevel

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/core/tx"
	"github.com/Haarizz/inventory-registries/internal/domain"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
)

// Service provides business logic for the PriceLevel catalog.
type Service struct {
	*domain.CatalogService[*PriceLevel]
	repo        Repository
	productRepo product.Repository
}

// NewService creates a new PriceLevel service.
func NewService(repo Repository, productRepo product.Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*PriceLevel]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "price level",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		productRepo:    productRepo,
	}

	base.Hooks().OnBeforeCreate(svc.prepare)
	base.Hooks().OnBeforeUpdate(svc.prepare)

	return svc
}

// prepare validates the product reference and tier name uniqueness within it.
func (s *Service) prepare(ctx context.Context, pl *PriceLevel) error {
	ok, err := s.productRepo.Exists(ctx, pl.ProductID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("product", pl.ProductID.String())
	}

	exists, err := s.repo.ExistsByNameForProduct(ctx, pl.Name, pl.ProductID, pl.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("price level", "name", pl.Name).
			WithDetail("product_id", pl.ProductID.String())
	}

	return nil
}

// ListByProduct retrieves active price levels of one product.
func (s *Service) ListByProduct(ctx context.Context, productID id.ID) ([]*PriceLevel, error) {
	return s.repo.ListByProduct(ctx, productID)
}
