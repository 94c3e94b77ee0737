package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1" example:"20"`
}

// IDsRequest 批量删除请求
type IDsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// IDsResponse 批量删除响应，只包含实际删除的ID
type IDsResponse struct {
	IDs []uint `json:"ids"`
}

// CountResponse 总数
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

// Money 金额输出为保留两位小数的JSON数字，如100.00
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
