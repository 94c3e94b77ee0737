package order

import (
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrLengthMismatch 商品ID与数量个数不一致
	ErrLengthMismatch = apperrors.New(apperrors.ErrCodeLengthMismatch, "product_ids与amounts长度必须一致")

	// ErrDuplicateProduct 同一订单中商品重复
	ErrDuplicateProduct = apperrors.New(apperrors.ErrCodeDuplicateEntry, "同一订单中商品不能重复")

	// ErrUnknownProduct 订单引用了不存在的商品
	ErrUnknownProduct = apperrors.New(apperrors.ErrCodeReferenced, "订单中包含不存在的商品")
)
