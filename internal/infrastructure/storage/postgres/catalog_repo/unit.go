package catalog_repo

import (
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/unit"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

const unitTable = "cat_units"

// Compile-time check.
var _ unit.Repository = (*UnitRepo)(nil)

// UnitRepo implements unit.Repository.
type UnitRepo struct {
	*BaseCatalogRepo[*unit.Unit]
}

// NewUnitRepo creates a new unit repository.
func NewUnitRepo(txManager *postgres.TxManager) *UnitRepo {
	return &UnitRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			unitTable,
			postgres.ExtractDBColumns[unit.Unit](),
			func() *unit.Unit { return &unit.Unit{} },
		),
	}
}
