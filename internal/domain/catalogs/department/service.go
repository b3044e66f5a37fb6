package department

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/tx"
	"github.com/Haarizz/inventory-registries/internal/domain"
)

// Service provides business logic for the Department catalog.
type Service struct {
	*domain.CatalogService[*Department]
	repo Repository
}

// NewService creates a new Department service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Department]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "department",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkNameUnique)
	base.Hooks().OnBeforeUpdate(svc.checkNameUnique)

	return svc
}

func (s *Service) checkNameUnique(ctx context.Context, d *Department) error {
	exists, err := s.repo.ExistsByName(ctx, d.Name, d.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("department", "name", d.Name)
	}
	return nil
}
