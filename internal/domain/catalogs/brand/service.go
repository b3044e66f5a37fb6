package brand

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/tx"
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Service provides business logic for the Brand catalog.
type Service struct {
	*domain.CatalogService[*Brand]
	repo Repository
}

// NewService creates a new Brand service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Brand]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "brand",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkNameUnique)
	base.Hooks().OnBeforeUpdate(svc.checkNameUnique)

	return svc
}

func (s *Service) checkNameUnique(ctx context.Context, b *Brand) error {
	exists, err := s.repo.ExistsByName(ctx, b.Name, b.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("brand", "name", b.Name)
	}
	return nil
}
