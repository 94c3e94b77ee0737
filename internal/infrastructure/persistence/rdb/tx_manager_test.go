package rdb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_Transaction(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txm := NewTxManager(db)
	products := NewProductRepository(db)

	t.Run("出错回滚", func(t *testing.T) {
		err := txm.Transaction(ctx, func(txCtx context.Context) error {
			if _, err := products.Create(txCtx, newProduct("rollback")); err != nil {
				return err
			}
			return errors.New("boom")
		})
		require.Error(t, err)

		total, err := products.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("成功提交", func(t *testing.T) {
		err := txm.Transaction(ctx, func(txCtx context.Context) error {
			_, err := products.Create(txCtx, newProduct("commit"))
			return err
		})
		require.NoError(t, err)

		total, err := products.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func TestTxManager_Begin(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txm := NewTxManager(db)
	products := NewProductRepository(db)

	t.Run("Rollback丢弃写入", func(t *testing.T) {
		txCtx, tx, err := txm.Begin(ctx)
		require.NoError(t, err)

		_, err = products.Create(txCtx, newProduct("discard"))
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		total, err := products.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("嵌套事务失败只回滚内层", func(t *testing.T) {
		txCtx, tx, err := txm.Begin(ctx)
		require.NoError(t, err)

		_, err = products.Create(txCtx, newProduct("outer"))
		require.NoError(t, err)

		err = txm.Transaction(txCtx, func(inner context.Context) error {
			if _, err := products.Create(inner, newProduct("inner")); err != nil {
				return err
			}
			return errors.New("inner failed")
		})
		require.Error(t, err)
		require.NoError(t, tx.Commit())

		list, err := products.List(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "outer", *list[0].ProductName)
	})
}
