package order

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/pkg/tracing"
)

// GetOrderUseCase 订单详情用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 返回订单及其明细，订单不存在返回ErrOrderNotFound
func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*order.Detail, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "order.Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", int64(id)))

	detail, err := uc.orderRepo.FindDetail(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if detail == nil {
		return nil, order.ErrOrderNotFound
	}
	return detail, nil
}
