package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout 报表日期格式
const DateLayout = "2006-01-02"

// Report 销售报表
type Report struct {
	TotalRevenue   decimal.Decimal // Σ amount × price
	TotalProfit    decimal.Decimal // Σ amount × (price − cost)
	TotalUnitsSold int64           // Σ amount（退货为负数，会抵扣）
	TotalReturns   int64           // 含负数明细的订单数，每个订单只计一次
}

// Zero 空区间的报表，各项均为0
func Zero() *Report {
	return &Report{TotalRevenue: decimal.Zero, TotalProfit: decimal.Zero}
}

// DateRange 报表日期区间，按UTC自然日计算，首尾两天都包含在内
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange 解析YYYY-MM-DD格式的起止日期
// 日期格式错误或开始日期晚于结束日期时返回错误，不会访问数据库
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, strings.TrimSpace(start), time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDate.WithMessage(fmt.Sprintf("start_date格式错误，应为YYYY-MM-DD: %q", start))
	}
	e, err := time.ParseInLocation(DateLayout, strings.TrimSpace(end), time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDate.WithMessage(fmt.Sprintf("end_date格式错误，应为YYYY-MM-DD: %q", end))
	}
	if s.After(e) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: s, End: e}, nil
}

// Bounds 返回半开区间[from, to)，to为结束日期的次日零点
// 这样同一天的区间（start == end）也能包含当天所有订单
func (r DateRange) Bounds() (from, to time.Time) {
	return r.Start, r.End.AddDate(0, 0, 1)
}

// Key 缓存键的区间部分
func (r DateRange) Key() string {
	return r.Start.Format(DateLayout) + ":" + r.End.Format(DateLayout)
}
