package orderproduct

import (
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

var (
	ErrOrderProductNotFound = apperrors.New(apperrors.ErrCodeOrderProductNotFound, "订单明细不存在")
	ErrMissingReference     = apperrors.New(apperrors.ErrCodeInvalidParams, "order_id与product_id不能为空")
)
