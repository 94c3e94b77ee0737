package product

import (
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// 商品领域错误定义
var (
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "商品不存在")
	ErrNameTooLong     = apperrors.New(apperrors.ErrCodeInvalidParams, "商品名称不能超过100个字符")
	ErrNegativePrice   = apperrors.New(apperrors.ErrCodeInvalidAmount, "价格不能为负数")
	ErrNegativeCost    = apperrors.New(apperrors.ErrCodeInvalidAmount, "成本不能为负数")
	ErrNegativeStock   = apperrors.New(apperrors.ErrCodeInvalidAmount, "库存不能为负数")
)
