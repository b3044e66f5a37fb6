package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
	"github.com/Haarizz/inventory-registries/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// Compile-time check.
var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// FindActiveByID returns the product only if it exists and is active.
func (r *ProductRepo) FindActiveByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[product.Product]()...).
		From(productTable).
		Where(squirrel.Eq{"id": productID}).
		Where(squirrel.Eq{"active": true}).
		Limit(1)

	p, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", productID.String())
		}
		return nil, err
	}
	return p, nil
}

// FindByCode returns the active product with the given code.
func (r *ProductRepo) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[product.Product]()...).
		From(productTable).
		Where(squirrel.Eq{"code": code}).
		Where(squirrel.Eq{"active": true}).
		Limit(1)

	p, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", code)
		}
		return nil, err
	}
	return p, nil
}

// ExistsByCode checks code uniqueness among active products.
func (r *ProductRepo) ExistsByCode(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(productTable).
		Where(squirrel.Expr("lower(code) = lower(?)", code)).
		Where(squirrel.Eq{"active": true}).
		Limit(1)

	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	return r.ScanExists(ctx, q, "exists by code")
}

// SetStock overwrites the ledger value for a product. The version bump
// keeps concurrent catalog edits honest about the stale stock they read.
func (r *ProductRepo) SetStock(ctx context.Context, productID id.ID, stock int) error {
	q := r.Builder().
		Update(productTable).
		Set("stock", stock).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": productID}).
		Where(squirrel.Eq{"active": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set stock: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("execute set stock: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product", productID.String())
	}

	return nil
}

// ListBelowReorderLevel returns active products whose stock is below
// their reorder level.
func (r *ProductRepo) ListBelowReorderLevel(ctx context.Context) ([]*product.Product, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[product.Product]()...).
		From(productTable).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Expr("reorder_level IS NOT NULL AND stock < reorder_level")).
		OrderBy("name ASC")

	return r.FindMany(ctx, q)
}
