package product

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxNameLength 商品名称最大长度
const MaxNameLength = 100

// Product 商品实体
// 价格与成本使用decimal，避免浮点误差（数据库为DECIMAL(15,2)）
type Product struct {
	ID          uint
	CreatedAt   time.Time
	ProductName *string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Stock       int
}

// Validate 校验业务规则：价格、成本、库存均不能为负
func (p *Product) Validate() error {
	if p.ProductName != nil && utf8.RuneCountInString(*p.ProductName) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Cost.IsNegative() {
		return ErrNegativeCost
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// Patch 商品部分更新，nil字段不修改
type Patch struct {
	ProductName *string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	Stock       *int
}

// Validate 校验补丁中出现的字段
func (p *Patch) Validate() error {
	if p.ProductName != nil && utf8.RuneCountInString(*p.ProductName) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Price != nil && p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Cost != nil && p.Cost.IsNegative() {
		return ErrNegativeCost
	}
	if p.Stock != nil && *p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
