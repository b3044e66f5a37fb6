package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/pricelevel"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

const priceLevelTable = "cat_price_levels"

// Compile-time check.
var _ pricelevel.Repository = (*PriceLevelRepo)(nil)

// PriceLevelRepo implements pricelevel.Repository.
type PriceLevelRepo struct {
	*BaseCatalogRepo[*pricelevel.PriceLevel]
}

// NewPriceLevelRepo creates a new price level repository.
func NewPriceLevelRepo(txManager *postgres.TxManager) *PriceLevelRepo {
	return &PriceLevelRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			priceLevelTable,
			postgres.ExtractDBColumns[pricelevel.PriceLevel](),
			func() *pricelevel.PriceLevel { return &pricelevel.PriceLevel{} },
		),
	}
}

// ExistsByNameForProduct checks tier name uniqueness within a product.
func (r *PriceLevelRepo) ExistsByNameForProduct(ctx context.Context, name string, productID, excludeID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(priceLevelTable).
		Where(squirrel.Expr("lower(name) = lower(?)", name)).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"active": true}).
		Limit(1)

	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	return r.ScanExists(ctx, q, "exists by name for product")
}

// ListByProduct retrieves active price levels of one product.
func (r *PriceLevelRepo) ListByProduct(ctx context.Context, productID id.ID) ([]*pricelevel.PriceLevel, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[pricelevel.PriceLevel]()...).
		From(priceLevelTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC")

	return r.FindMany(ctx, q)
}
