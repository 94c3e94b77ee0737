package dto

import (
	"time"

	"github.com/xiebiao/inventory/internal/domain/orderproduct"
)

// CreateOrderProductRequest 创建订单明细
type CreateOrderProductRequest struct {
	OrderID   uint `json:"order_id" binding:"required" example:"1"`
	ProductID uint `json:"product_id" binding:"required" example:"1"`
	Amount    *int `json:"amount" binding:"required" example:"3"`
}

func (r *CreateOrderProductRequest) ToEntity() *orderproduct.OrderProduct {
	return &orderproduct.OrderProduct{
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Amount:    *r.Amount,
	}
}

// UpdateOrderProductRequest 部分更新订单明细
type UpdateOrderProductRequest struct {
	OrderID   *uint `json:"order_id" binding:"omitempty,min=1" example:"1"`
	ProductID *uint `json:"product_id" binding:"omitempty,min=1" example:"2"`
	Amount    *int  `json:"amount" example:"-1"`
}

func (r *UpdateOrderProductRequest) ToPatch() *orderproduct.Patch {
	return &orderproduct.Patch{
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Amount:    r.Amount,
	}
}

// OrderProductResponse 订单明细
type OrderProductResponse struct {
	ID        uint      `json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	OrderID   uint      `json:"order_id" example:"1"`
	ProductID uint      `json:"product_id" example:"1"`
	Amount    int       `json:"amount" example:"3"`
}

func NewOrderProductResponse(op *orderproduct.OrderProduct) OrderProductResponse {
	return OrderProductResponse{
		ID:        op.ID,
		CreatedAt: op.CreatedAt.UTC(),
		OrderID:   op.OrderID,
		ProductID: op.ProductID,
		Amount:    op.Amount,
	}
}
