package rdb

import (
	"gorm.io/gorm"

	"github.com/xiebiao/inventory/internal/domain/product"
)

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &crudRepository[ProductModel, product.Product, product.Patch]{
		db:       db,
		name:     "商品",
		toEntity: toProductEntity,
		toModel:  toProductModel,
		columns:  productColumns,
	}
}

func toProductEntity(m *ProductModel) *product.Product {
	return &product.Product{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		ProductName: m.ProductName,
		Price:       m.Price,
		Cost:        m.Cost,
		Stock:       m.Stock,
	}
}

func toProductModel(p *product.Product) *ProductModel {
	return &ProductModel{
		CreatedAt:   p.CreatedAt,
		ProductName: p.ProductName,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
	}
}

func productColumns(p *product.Patch) map[string]interface{} {
	cols := make(map[string]interface{})
	if p.ProductName != nil {
		cols["product_name"] = *p.ProductName
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Cost != nil {
		cols["cost"] = *p.Cost
	}
	if p.Stock != nil {
		cols["stock"] = *p.Stock
	}
	return cols
}
