package rdb

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel 商品表
// 金额使用DECIMAL(15,2)，Go侧使用decimal.Decimal
type ProductModel struct {
	ID          uint            `gorm:"primaryKey"`
	CreatedAt   time.Time       `gorm:"not null"`
	ProductName *string         `gorm:"size:100;index:idx_product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
}

func (ProductModel) TableName() string {
	return "products"
}

// OrderModel 订单表
// 明细使用RESTRICT，有明细的订单不能直接删除
type OrderModel struct {
	ID        uint                `gorm:"primaryKey"`
	CreatedAt time.Time           `gorm:"not null;index:idx_order_created_at"`
	Items     []OrderProductModel `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderProductModel 订单明细表
// 同一订单中同一商品只能出现一次：UNIQUE(order_id, product_id)
type OrderProductModel struct {
	ID        uint          `gorm:"primaryKey"`
	CreatedAt time.Time     `gorm:"not null"`
	OrderID   uint          `gorm:"not null;uniqueIndex:uq_order_product,priority:1;index:idx_order_id"`
	ProductID uint          `gorm:"not null;uniqueIndex:uq_order_product,priority:2;index:idx_product_id"`
	Amount    int           `gorm:"not null;default:0"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (OrderProductModel) TableName() string {
	return "orders_products"
}
