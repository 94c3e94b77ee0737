package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order 订单实体
// 订单本身只有创建时间，商品与数量记录在订单明细（orders_products）中
type Order struct {
	ID        uint
	CreatedAt time.Time
}

// Patch 订单部分更新，目前只允许修改创建时间
type Patch struct {
	CreatedAt *time.Time
}

// CreateCommand 原子下单命令
// ProductIDs与Amounts按下标一一对应，Amount为负数表示退货
type CreateCommand struct {
	ProductIDs []uint
	Amounts    []int
}

// Validate 校验两个列表长度一致，必须在访问数据库之前调用
// 空列表是合法的，会创建一个没有明细的订单
func (c CreateCommand) Validate() error {
	if len(c.ProductIDs) != len(c.Amounts) {
		return ErrLengthMismatch
	}
	return nil
}

// LineItem 订单详情中的一行商品
type LineItem struct {
	ProductID   uint
	ProductName *string
	Amount      int
	Price       decimal.Decimal
	Cost        decimal.Decimal
}

// Detail 订单详情（订单 + 关联商品）
type Detail struct {
	OrderID        uint
	OrderCreatedAt time.Time
	Products       []LineItem
}
