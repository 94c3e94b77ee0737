package order

import (
	"context"
	"time"
)

// RoutingKeyCreated 订单创建事件的routing key
const RoutingKeyCreated = "order.created"

// CreatedEvent 订单创建事件，在请求事务提交后发布
type CreatedEvent struct {
	OrderID    uint      `json:"order_id"`
	ProductIDs []uint    `json:"product_ids"`
	Amounts    []int     `json:"amounts"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher 订单事件发布
type EventPublisher interface {
	PublishCreated(ctx context.Context, e CreatedEvent) error
}

// NopPublisher 未启用消息队列时使用
type NopPublisher struct{}

func (NopPublisher) PublishCreated(context.Context, CreatedEvent) error { return nil }
