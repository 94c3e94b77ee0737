package order

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/crud"
	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/pkg/metrics"
	"github.com/xiebiao/inventory/pkg/tracing"
)

const tracerName = "inventory/application/order"

// publishTimeout 发布订单事件的超时时间
const publishTimeout = 5 * time.Second

// CreateOrderUseCase 原子下单用例
// 订单与全部明细要么一起写入，要么都不写入
type CreateOrderUseCase struct {
	orderRepo order.Repository
	publisher order.EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

// NewCreateOrderUseCase 创建下单用例，publisher为nil时不发布事件
func NewCreateOrderUseCase(orderRepo order.Repository, publisher order.EventPublisher, log *zap.Logger) *CreateOrderUseCase {
	if publisher == nil {
		publisher = order.NopPublisher{}
	}
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Execute 执行下单
// 1. 校验product_ids与amounts长度一致（不访问数据库）
// 2. 调用仓储原子写入订单与明细，created_at为当前UTC时间
// 3. 记录下单指标
// 4. 请求事务提交后发布order.created事件
func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd order.CreateCommand) (uint, error) {
	if err := cmd.Validate(); err != nil {
		metrics.IncCounter(metrics.OrdersFailedTotal)
		return 0, err
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "order.Create")
	defer span.End()
	span.SetAttributes(attribute.Int("order.lines", len(cmd.ProductIDs)))

	metrics.IncGauge(metrics.OrdersInProgress)
	defer metrics.DecGauge(metrics.OrdersInProgress)

	createdAt := uc.now().UTC()
	start := time.Now()
	orderID, err := uc.orderRepo.CreateWithProducts(ctx, cmd.ProductIDs, cmd.Amounts, createdAt)
	metrics.ObserveHistogram(metrics.OrderCreationDuration, time.Since(start).Seconds())
	if err != nil {
		metrics.IncCounter(metrics.OrdersFailedTotal)
		tracing.RecordError(span, err)
		uc.log.Warn("创建订单失败", zap.Uints("product_ids", cmd.ProductIDs), zap.Error(err))
		return 0, err
	}

	metrics.IncCounter(metrics.OrdersCreatedTotal)
	span.SetAttributes(attribute.Int64("order.id", int64(orderID)))
	uc.log.Info("订单创建成功", zap.Uint("order_id", orderID), zap.Int("lines", len(cmd.ProductIDs)))

	event := order.CreatedEvent{
		OrderID:    orderID,
		ProductIDs: cmd.ProductIDs,
		Amounts:    cmd.Amounts,
		CreatedAt:  createdAt,
	}
	crud.AfterCommit(ctx, func() { uc.publish(ctx, event) })
	return orderID, nil
}

// publish 订单已经提交，发布失败只记日志
func (uc *CreateOrderUseCase) publish(ctx context.Context, event order.CreatedEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := uc.publisher.PublishCreated(ctx, event); err != nil {
		uc.log.Warn("发布订单事件失败", zap.Uint("order_id", event.OrderID), zap.Error(err))
	}
}

// ExecuteBatch 批量下单
// 先校验全部命令，再依次下单；任意一笔失败返回错误，由请求事务整体回滚
func (uc *CreateOrderUseCase) ExecuteBatch(ctx context.Context, cmds []order.CreateCommand) ([]uint, error) {
	for _, cmd := range cmds {
		if err := cmd.Validate(); err != nil {
			return nil, err
		}
	}

	ids := make([]uint, 0, len(cmds))
	for _, cmd := range cmds {
		id, err := uc.Execute(ctx, cmd)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
