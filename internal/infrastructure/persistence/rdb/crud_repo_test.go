package rdb

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/inventory/internal/domain/orderproduct"
	"github.com/xiebiao/inventory/internal/domain/product"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	// 1. 创建
	created := createProduct(t, repo, "Widget", "100.00", "50.00", 10)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// 2. 查询
	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Widget", *got.ProductName)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, 10, got.Stock)

	// 3. 部分更新，未出现的字段保持不变
	stock := 7
	updated, err := repo.Update(ctx, created.ID, &product.Patch{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)
	assert.Equal(t, "Widget", *updated.ProductName)
	assert.True(t, updated.Cost.Equal(decimal.RequireFromString("50")))

	// 4. 删除
	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	got, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	got, err := repo.FindByID(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, got)

	stock := 1
	updated, err := repo.Update(ctx, 404, &product.Patch{Stock: &stock})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestProductRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		createProduct(t, repo, name, "1.00", "0.50", 1)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	page2, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "c", *page2[0].ProductName)
	assert.Equal(t, "d", *page2[1].ProductName)

	page3, err := repo.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	empty, err := repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProductRepository_Batch(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	n1, n2 := "x", "y"
	created, err := repo.BatchCreate(ctx, []*product.Product{
		{ProductName: &n1, Price: decimal.NewFromInt(1), Cost: decimal.NewFromInt(1)},
		{ProductName: &n2, Price: decimal.NewFromInt(2), Cost: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotZero(t, created[0].ID)
	assert.NotZero(t, created[1].ID)

	empty, err := repo.BatchCreate(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// 不存在的ID被忽略
	ids, err := repo.BatchDelete(ctx, []uint{created[1].ID, 999, created[0].ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{created[0].ID, created[1].ID}, ids)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestProductRepository_DeleteReferenced(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db)

	p := createProduct(t, products, "Widget", "100.00", "50.00", 10)
	_, err := orders.CreateWithProducts(ctx, []uint{p.ID}, []int{1}, day(2024, 1, 1, 9))
	require.NoError(t, err)

	_, err = products.Delete(ctx, p.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReferenced)

	// 批量删除同样整体失败
	_, err = products.BatchDelete(ctx, []uint{p.ID})
	assert.ErrorIs(t, err, apperrors.ErrReferenced)

	got, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestOrderProductRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db)
	lines := NewOrderProductRepository(db)

	p := createProduct(t, products, "Widget", "100.00", "50.00", 10)
	orderID, err := orders.CreateWithProducts(ctx, nil, nil, day(2024, 1, 1, 9))
	require.NoError(t, err)

	line, err := lines.Create(ctx, &orderproduct.OrderProduct{OrderID: orderID, ProductID: p.ID, Amount: 3})
	require.NoError(t, err)
	assert.NotZero(t, line.ID)

	t.Run("同一订单重复商品", func(t *testing.T) {
		_, err := lines.Create(ctx, &orderproduct.OrderProduct{OrderID: orderID, ProductID: p.ID, Amount: 1})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
	})

	t.Run("引用不存在的商品", func(t *testing.T) {
		_, err := lines.Create(ctx, &orderproduct.OrderProduct{OrderID: orderID, ProductID: 999, Amount: 1})
		assert.ErrorIs(t, err, apperrors.ErrReferenced)
	})

	t.Run("修改数量", func(t *testing.T) {
		amount := -2
		updated, err := lines.Update(ctx, line.ID, &orderproduct.Patch{Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, -2, updated.Amount)
		assert.Equal(t, orderID, updated.OrderID)
	})
}
