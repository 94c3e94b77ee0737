package product

import (
	"github.com/xiebiao/inventory/internal/domain/crud"
)

// Repository 商品仓储，只需要通用的增删改查
type Repository = crud.Repository[Product, Patch]
