package rdb

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/inventory/internal/domain/order"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// orderRepository 订单仓储实现
// 通用增删改查复用crudRepository，额外提供原子下单与订单详情
type orderRepository struct {
	*crudRepository[OrderModel, order.Order, order.Patch]
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{
		crudRepository: &crudRepository[OrderModel, order.Order, order.Patch]{
			db:       db,
			name:     "订单",
			toEntity: toOrderEntity,
			toModel:  toOrderModel,
			columns:  orderColumns,
		},
	}
}

func toOrderEntity(m *OrderModel) *order.Order {
	return &order.Order{ID: m.ID, CreatedAt: m.CreatedAt}
}

func toOrderModel(o *order.Order) *OrderModel {
	return &OrderModel{CreatedAt: o.CreatedAt}
}

func orderColumns(p *order.Patch) map[string]interface{} {
	cols := make(map[string]interface{})
	if p.CreatedAt != nil {
		cols["created_at"] = p.CreatedAt.UTC()
	}
	return cols
}

// CreateWithProducts 原子下单
// 1. PostgreSQL调用存储过程create_order_with_products，一次往返完成
// 2. 其他数据库在事务中依次插入订单与明细
// 两种方式都包在（嵌套）事务里，失败时不影响外层请求事务的后续语句
func (r *orderRepository) CreateWithProducts(ctx context.Context, productIDs []uint, amounts []int, createdAt time.Time) (uint, error) {
	if len(productIDs) != len(amounts) {
		return 0, order.ErrLengthMismatch
	}

	db := getDB(ctx, r.db)
	var (
		orderID uint
		err     error
	)
	if db.Dialector.Name() == "postgres" {
		orderID, err = r.createWithFunction(db, productIDs, amounts, createdAt)
	} else {
		orderID, err = r.createInTransaction(db, productIDs, amounts, createdAt)
	}
	if err != nil {
		return 0, translateOrderError(err)
	}
	return orderID, nil
}

// createOrderCall 数组类型与存储过程签名一致
const createOrderCall = "SELECT create_order_with_products(?::bigint[], ?::bigint[], ?) AS order_id"

func (r *orderRepository) createWithFunction(db *gorm.DB, productIDs []uint, amounts []int, createdAt time.Time) (uint, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Raw(createOrderCall,
			pgArray(productIDs), pgArray(amounts), createdAt.UTC()).
			Scan(&orderID).Error
	})
	return orderID, err
}

func (r *orderRepository) createInTransaction(db *gorm.DB, productIDs []uint, amounts []int, createdAt time.Time) (uint, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		// 1. 插入订单
		o := &OrderModel{CreatedAt: createdAt.UTC()}
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}

		// 2. 批量插入明细
		if len(productIDs) > 0 {
			items := make([]*OrderProductModel, 0, len(productIDs))
			for i := range productIDs {
				items = append(items, &OrderProductModel{
					CreatedAt: o.CreatedAt,
					OrderID:   o.ID,
					ProductID: productIDs[i],
					Amount:    amounts[i],
				})
			}
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return err
			}
		}

		orderID = o.ID
		return nil
	})
	return orderID, err
}

// translateOrderError 下单失败的错误转换
// 重复商品 → ErrDuplicateProduct，不存在的商品 → ErrUnknownProduct
func translateOrderError(err error) error {
	switch {
	case isDuplicateError(err):
		return order.ErrDuplicateProduct.WithErr(err)
	case isForeignKeyError(err):
		return order.ErrUnknownProduct.WithErr(err)
	default:
		return apperrors.Wrap(err, "创建订单失败")
	}
}

// pgArray 生成PostgreSQL数组字面量，如{1,2,3}
func pgArray[T ~int | ~uint](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// orderDetailRow 订单详情查询结果，products为JSON数组
type orderDetailRow struct {
	OrderID        uint
	OrderCreatedAt time.Time
	Products       string
}

// lineItemJSON JSON聚合中的一行
// LEFT JOIN没有明细时各数据库会产生一个全为null的元素，用product_id过滤
type lineItemJSON struct {
	ProductID   *uint           `json:"product_id"`
	ProductName *string         `json:"product_name"`
	Amount      *int            `json:"amount"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
}

// FindDetail 一次查询返回订单及明细
// orders LEFT JOIN orders_products JOIN products，按订单分组并把明细聚合为JSON数组
func (r *orderRepository) FindDetail(ctx context.Context, id uint) (*order.Detail, error) {
	db := getDB(ctx, r.db)
	query := `SELECT o.id AS order_id, o.created_at AS order_created_at, ` + lineItemsAggregate(db.Dialector.Name()) + ` AS products
FROM orders o
LEFT JOIN orders_products op ON op.order_id = o.id
LEFT JOIN products p ON p.id = op.product_id
WHERE o.id = ?
GROUP BY o.id, o.created_at`

	var rows []orderDetailRow
	if err := db.Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询订单详情失败")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var items []lineItemJSON
	if rows[0].Products != "" {
		if err := json.Unmarshal([]byte(rows[0].Products), &items); err != nil {
			return nil, apperrors.Wrap(err, "解析订单明细失败")
		}
	}

	detail := &order.Detail{
		OrderID:        rows[0].OrderID,
		OrderCreatedAt: rows[0].OrderCreatedAt.UTC(),
		Products:       make([]order.LineItem, 0, len(items)),
	}
	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		line := order.LineItem{
			ProductID:   *it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Cost:        it.Cost,
		}
		if it.Amount != nil {
			line.Amount = *it.Amount
		}
		detail.Products = append(detail.Products, line)
	}
	sort.Slice(detail.Products, func(i, j int) bool {
		return detail.Products[i].ProductID < detail.Products[j].ProductID
	})
	return detail, nil
}

// lineItemsAggregate 各数据库的JSON聚合表达式
func lineItemsAggregate(dialect string) string {
	switch dialect {
	case "postgres":
		return `COALESCE(json_agg(json_build_object('product_id', p.id, 'product_name', p.product_name, 'amount', op.amount, 'price', p.price, 'cost', p.cost)) FILTER (WHERE op.id IS NOT NULL), '[]'::json)`
	case "mysql":
		return `JSON_ARRAYAGG(JSON_OBJECT('product_id', p.id, 'product_name', p.product_name, 'amount', op.amount, 'price', p.price, 'cost', p.cost))`
	default:
		return `json_group_array(json_object('product_id', p.id, 'product_name', p.product_name, 'amount', op.amount, 'price', p.price, 'cost', p.cost))`
	}
}
