package messaging

import (
	"context"

	"github.com/xiebiao/inventory/internal/domain/order"
)

// publisher 由*mq.Publisher实现，测试中可以替换
type publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// OrderPublisher 把订单事件发布到RabbitMQ
type OrderPublisher struct {
	pub publisher
}

var _ order.EventPublisher = (*OrderPublisher)(nil)

// NewOrderPublisher 创建订单事件发布者
func NewOrderPublisher(pub publisher) *OrderPublisher {
	return &OrderPublisher{pub: pub}
}

// PublishCreated 发布order.created事件
func (p *OrderPublisher) PublishCreated(ctx context.Context, e order.CreatedEvent) error {
	e.CreatedAt = e.CreatedAt.UTC()
	return p.pub.Publish(ctx, order.RoutingKeyCreated, e)
}
