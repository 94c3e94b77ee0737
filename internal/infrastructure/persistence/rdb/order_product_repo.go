package rdb

import (
	"gorm.io/gorm"

	"github.com/xiebiao/inventory/internal/domain/orderproduct"
)

// NewOrderProductRepository 创建订单明细仓储
// 引用不存在的订单或商品、重复的(order_id, product_id)都返回409
func NewOrderProductRepository(db *gorm.DB) orderproduct.Repository {
	return &crudRepository[OrderProductModel, orderproduct.OrderProduct, orderproduct.Patch]{
		db:       db,
		name:     "订单明细",
		toEntity: toOrderProductEntity,
		toModel:  toOrderProductModel,
		columns:  orderProductColumns,
	}
}

func toOrderProductEntity(m *OrderProductModel) *orderproduct.OrderProduct {
	return &orderproduct.OrderProduct{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Amount:    m.Amount,
	}
}

func toOrderProductModel(op *orderproduct.OrderProduct) *OrderProductModel {
	return &OrderProductModel{
		CreatedAt: op.CreatedAt,
		OrderID:   op.OrderID,
		ProductID: op.ProductID,
		Amount:    op.Amount,
	}
}

func orderProductColumns(p *orderproduct.Patch) map[string]interface{} {
	cols := make(map[string]interface{})
	if p.OrderID != nil {
		cols["order_id"] = *p.OrderID
	}
	if p.ProductID != nil {
		cols["product_id"] = *p.ProductID
	}
	if p.Amount != nil {
		cols["amount"] = *p.Amount
	}
	return cols
}
