package rdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/inventory/internal/domain/crud"
)

// txKey context中存放事务DB的key
type txKey struct{}

// TxManager 事务管理器
// 1. 事务DB通过context传递，仓储用getDB取出
// 2. ctx中已有事务时，Transaction使用Savepoint嵌套
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

var _ crud.TxManager = (*TxManager)(nil)

// Transaction 在事务中执行fn
// fn返回error时ROLLBACK（嵌套时回滚到Savepoint），返回nil时COMMIT
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return getDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

// Begin 开启一个请求级事务
// 返回的ctx携带事务，调用方必须Commit或Rollback
func (m *TxManager) Begin(ctx context.Context) (context.Context, crud.Tx, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, nil, tx.Error
	}
	return WithTx(ctx, tx), &gormTx{db: tx}, nil
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) Commit() error {
	return t.db.Commit().Error
}

func (t *gormTx) Rollback() error {
	return t.db.Rollback().Error
}

// WithTx 将事务DB放入context
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// getDB 优先使用context中的事务DB
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
