package orderproduct

import (
	"github.com/xiebiao/inventory/internal/domain/crud"
)

// Repository 订单明细仓储
type Repository = crud.Repository[OrderProduct, Patch]
