package orderproduct

import (
	"time"
)

// OrderProduct 订单明细（订单与商品的关联）
// Amount允许为负数，表示退货
type OrderProduct struct {
	ID        uint
	CreatedAt time.Time
	OrderID   uint
	ProductID uint
	Amount    int
}

// Validate 订单与商品必须指定
func (op *OrderProduct) Validate() error {
	if op.OrderID == 0 || op.ProductID == 0 {
		return ErrMissingReference
	}
	return nil
}

// Patch 订单明细部分更新
type Patch struct {
	OrderID   *uint
	ProductID *uint
	Amount    *int
}

// Validate 修改关联时不能置为0
func (p *Patch) Validate() error {
	if (p.OrderID != nil && *p.OrderID == 0) || (p.ProductID != nil && *p.ProductID == 0) {
		return ErrMissingReference
	}
	return nil
}
