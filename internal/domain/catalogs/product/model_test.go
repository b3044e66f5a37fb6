package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

func validProduct() *Product {
	return NewProduct("SKU-1", "Widget", id.New(), id.New(), id.New())
}

func TestProductValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(p *Product)
		wantOK bool
	}{
		{"valid", func(p *Product) {}, true},
		{"missing name", func(p *Product) { p.Name = "" }, false},
		{"missing code", func(p *Product) { p.Code = "  " }, false},
		{"missing brand", func(p *Product) { p.BrandID = id.Nil() }, false},
		{"missing sub-department", func(p *Product) { p.SubDepartmentID = id.Nil() }, false},
		{"missing unit", func(p *Product) { p.UnitID = id.Nil() }, false},
		{"negative selling price", func(p *Product) { p.SellingPrice = decimal.NewFromInt(-1) }, false},
		{"negative cost price", func(p *Product) { p.CostPrice = decimal.NewFromInt(-1) }, false},
		{"negative stock", func(p *Product) { p.Stock = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)

			err := p.Validate(ctx)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperror.HasCode(err, apperror.CodeValidation), "got %v", err)
		})
	}
}

func TestIsBelowReorderLevel(t *testing.T) {
	p := validProduct()
	p.Stock = 5

	assert.False(t, p.IsBelowReorderLevel(), "no reorder level set")

	level := 10
	p.ReorderLevel = &level
	assert.True(t, p.IsBelowReorderLevel())

	p.Stock = 10
	assert.False(t, p.IsBelowReorderLevel(), "at the level is not below")

	p.Stock = 11
	assert.False(t, p.IsBelowReorderLevel())
}
