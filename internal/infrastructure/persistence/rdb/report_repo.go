package rdb

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/inventory/internal/domain/report"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// reportQuery 四个指标各用一个标量子查询，均按订单created_at过滤
//   - total_revenue:    Σ amount × price
//   - total_profit:     Σ amount × (price − cost)
//   - total_units_sold: Σ amount
//   - total_returns:    含amount < 0明细的订单数（去重）
const reportQuery = `SELECT
    COALESCE((SELECT SUM(op.amount * p.price)
        FROM orders_products op
        JOIN orders o ON o.id = op.order_id
        JOIN products p ON p.id = op.product_id
        WHERE o.created_at >= @from AND o.created_at < @to), 0) AS total_revenue,
    COALESCE((SELECT SUM(op.amount * (p.price - p.cost))
        FROM orders_products op
        JOIN orders o ON o.id = op.order_id
        JOIN products p ON p.id = op.product_id
        WHERE o.created_at >= @from AND o.created_at < @to), 0) AS total_profit,
    COALESCE((SELECT SUM(op.amount)
        FROM orders_products op
        JOIN orders o ON o.id = op.order_id
        WHERE o.created_at >= @from AND o.created_at < @to), 0) AS total_units_sold,
    COALESCE((SELECT COUNT(DISTINCT o.id)
        FROM orders o
        JOIN orders_products op ON op.order_id = o.id
        WHERE op.amount < 0 AND o.created_at >= @from AND o.created_at < @to), 0) AS total_returns`

// moneyPlaces 金额列精度，与DECIMAL(15,2)一致
const moneyPlaces = 2

type reportRow struct {
	TotalRevenue   decimal.Decimal
	TotalProfit    decimal.Decimal
	TotalUnitsSold int64
	TotalReturns   int64
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓储
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{db: db}
}

// Aggregate 统计[from, to)区间内的订单
func (r *reportRepository) Aggregate(ctx context.Context, from, to time.Time) (*report.Report, error) {
	var row reportRow
	err := getDB(ctx, r.db).Raw(reportQuery, map[string]interface{}{
		"from": from.UTC(),
		"to":   to.UTC(),
	}).Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计报表失败")
	}

	// SQLite的DECIMAL按REAL存储，SUM结果带浮点误差
	return &report.Report{
		TotalRevenue:   row.TotalRevenue.Round(moneyPlaces),
		TotalProfit:    row.TotalProfit.Round(moneyPlaces),
		TotalUnitsSold: row.TotalUnitsSold,
		TotalReturns:   row.TotalReturns,
	}, nil
}
