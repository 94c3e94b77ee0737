package order

import (
	"context"
	"time"

	"github.com/xiebiao/inventory/internal/domain/crud"
)

// Repository 订单仓储接口
// 除通用增删改查外，提供原子下单与订单详情查询
type Repository interface {
	crud.Repository[Order, Patch]

	// CreateWithProducts 原子地创建订单及其全部明细，返回订单ID
	// 任意一行失败（商品重复、商品不存在）则整体回滚，不会留下部分数据
	CreateWithProducts(ctx context.Context, productIDs []uint, amounts []int, createdAt time.Time) (uint, error)

	// FindDetail 一次查询返回订单及其明细，订单不存在返回(nil, nil)
	FindDetail(ctx context.Context, id uint) (*Detail, error)
}
