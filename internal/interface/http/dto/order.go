package dto

import (
	"encoding/json"
	"time"

	"github.com/xiebiao/inventory/internal/domain/order"
)

// CreateOrderRequest 下单请求
// product_ids与amounts按下标对应，长度必须一致；amount为负数表示退货
type CreateOrderRequest struct {
	ProductIDs []uint `json:"product_ids" binding:"required,dive,min=1" example:"1,2"`
	Amounts    []int  `json:"amounts" binding:"required" example:"10,-1"`
}

func (r *CreateOrderRequest) ToCommand() order.CreateCommand {
	return order.CreateCommand{ProductIDs: r.ProductIDs, Amounts: r.Amounts}
}

// CreateOrderResponse 下单响应
type CreateOrderResponse struct {
	OrderID uint `json:"order_id" example:"1"`
}

// BatchCreateOrderResponse 批量下单响应
type BatchCreateOrderResponse struct {
	OrderIDs []uint `json:"order_ids" example:"1,2"`
}

// UpdateOrderRequest 修改订单，只允许修改创建时间
type UpdateOrderRequest struct {
	CreatedAt *time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

func (r *UpdateOrderRequest) ToPatch() *order.Patch {
	return &order.Patch{CreatedAt: r.CreatedAt}
}

// OrderResponse 订单
type OrderResponse struct {
	ID        uint      `json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{ID: o.ID, CreatedAt: o.CreatedAt.UTC()}
}

// OrderDetailResponse 订单详情
type OrderDetailResponse struct {
	OrderID        uint                `json:"order_id" example:"1"`
	OrderCreatedAt time.Time           `json:"order_created_at" example:"2024-01-15T10:30:00Z"`
	Products       []OrderLineResponse `json:"products"`
}

// OrderLineResponse 订单详情中的商品行
type OrderLineResponse struct {
	ProductID   uint        `json:"product_id" example:"1"`
	ProductName *string     `json:"product_name" example:"Widget"`
	Amount      int         `json:"amount" example:"10"`
	Price       json.Number `json:"price" swaggertype:"number" example:"100.00"`
	Cost        json.Number `json:"cost" swaggertype:"number" example:"50.00"`
}

func NewOrderDetailResponse(d *order.Detail) OrderDetailResponse {
	lines := make([]OrderLineResponse, 0, len(d.Products))
	for _, p := range d.Products {
		lines = append(lines, OrderLineResponse{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Amount:      p.Amount,
			Price:       Money(p.Price),
			Cost:        Money(p.Cost),
		})
	}
	return OrderDetailResponse{
		OrderID:        d.OrderID,
		OrderCreatedAt: d.OrderCreatedAt.UTC(),
		Products:       lines,
	}
}
