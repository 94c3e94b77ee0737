package rdb

import (
	"fmt"

	"gorm.io/gorm"
)

// dropLegacyOrderFunction 旧版本以INT[]声明amounts，CREATE OR REPLACE不会替换不同签名的重载
const dropLegacyOrderFunction = `DROP FUNCTION IF EXISTS create_order_with_products(BIGINT[], INT[], TIMESTAMPTZ)`

// createOrderFunction 原子下单存储过程（仅PostgreSQL）
// amounts与orders_products.amount同为BIGINT
// 1. 两个数组长度不一致直接报错
// 2. 插入订单并取得ID
// 3. 用unnest按下标展开数组，批量插入明细
// 函数体内任意一步失败，整个调用回滚
const createOrderFunction = `
CREATE OR REPLACE FUNCTION create_order_with_products(
    product_ids      BIGINT[],
    amounts          BIGINT[],
    order_created_at TIMESTAMPTZ DEFAULT NOW()
) RETURNS BIGINT AS $$
DECLARE
    new_order_id BIGINT;
BEGIN
    IF COALESCE(array_length(product_ids, 1), 0) <> COALESCE(array_length(amounts, 1), 0) THEN
        RAISE EXCEPTION 'product_ids and amounts must have the same length';
    END IF;

    INSERT INTO orders (created_at) VALUES (order_created_at)
    RETURNING id INTO new_order_id;

    INSERT INTO orders_products (created_at, order_id, product_id, amount)
    SELECT order_created_at, new_order_id, t.product_id, t.amount
    FROM unnest(product_ids, amounts) AS t(product_id, amount);

    RETURN new_order_id;
END;
$$ LANGUAGE plpgsql`

// Migrate 创建表结构与索引
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ProductModel{}, &OrderModel{}, &OrderProductModel{}); err != nil {
		return fmt.Errorf("迁移表结构失败: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(dropLegacyOrderFunction).Error; err != nil {
			return fmt.Errorf("删除旧存储过程失败: %w", err)
		}
		if err := db.Exec(createOrderFunction).Error; err != nil {
			return fmt.Errorf("创建存储过程失败: %w", err)
		}
	}
	return nil
}
