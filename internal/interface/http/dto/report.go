package dto

import (
	"encoding/json"

	"github.com/xiebiao/inventory/internal/domain/report"
)

// ReportQuery 报表查询参数，日期格式YYYY-MM-DD，首尾都包含
type ReportQuery struct {
	StartDate string `form:"start_date" binding:"required" example:"2024-01-01"`
	EndDate   string `form:"end_date" binding:"required" example:"2024-01-31"`
}

// ReportResponse 销售报表
type ReportResponse struct {
	TotalRevenue   json.Number `json:"total_revenue" swaggertype:"number" example:"1000.00"`
	TotalProfit    json.Number `json:"total_profit" swaggertype:"number" example:"500.00"`
	TotalUnitsSold int64       `json:"total_units_sold" example:"10"`
	TotalReturns   int64       `json:"total_returns" example:"0"`
}

func NewReportResponse(r *report.Report) ReportResponse {
	return ReportResponse{
		TotalRevenue:   Money(r.TotalRevenue),
		TotalProfit:    Money(r.TotalProfit),
		TotalUnitsSold: r.TotalUnitsSold,
		TotalReturns:   r.TotalReturns,
	}
}
