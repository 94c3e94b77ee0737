package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/inventory/internal/domain/product"
)

// CreateProductRequest 创建商品
// 金额可以是数字或字符串（"19.99"），按decimal解析
type CreateProductRequest struct {
	ProductName *string          `json:"product_name" binding:"omitempty,max=100" example:"Widget"`
	Price       *decimal.Decimal `json:"price" binding:"required" swaggertype:"number" example:"100.00"`
	Cost        *decimal.Decimal `json:"cost" binding:"required" swaggertype:"number" example:"50.00"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0" example:"10"`
}

// ToEntity 转换为领域实体，stock缺省为0
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := &product.Product{
		ProductName: r.ProductName,
		Price:       *r.Price,
		Cost:        *r.Cost,
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	return p
}

// UpdateProductRequest 部分更新商品，只修改出现的字段
type UpdateProductRequest struct {
	ProductName *string          `json:"product_name" binding:"omitempty,max=100" example:"Widget"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number" example:"120.00"`
	Cost        *decimal.Decimal `json:"cost" swaggertype:"number" example:"60.00"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0" example:"5"`
}

func (r *UpdateProductRequest) ToPatch() *product.Patch {
	return &product.Patch{
		ProductName: r.ProductName,
		Price:       r.Price,
		Cost:        r.Cost,
		Stock:       r.Stock,
	}
}

// ProductResponse 商品
type ProductResponse struct {
	ID          uint        `json:"id" example:"1"`
	CreatedAt   time.Time   `json:"created_at" example:"2024-01-15T10:30:00Z"`
	ProductName *string     `json:"product_name" example:"Widget"`
	Price       json.Number `json:"price" swaggertype:"number" example:"100.00"`
	Cost        json.Number `json:"cost" swaggertype:"number" example:"50.00"`
	Stock       int         `json:"stock" example:"10"`
}

func NewProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt.UTC(),
		ProductName: p.ProductName,
		Price:       Money(p.Price),
		Cost:        Money(p.Cost),
		Stock:       p.Stock,
	}
}
