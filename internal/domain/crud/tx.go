package crud

import (
	"context"
)

// TxManager 事务管理器
// 事务通过ctx传递，仓储从ctx中取出当前事务
type TxManager interface {
	// Transaction 在事务中执行fn，fn返回error时回滚
	// ctx中已有事务时使用Savepoint嵌套
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Begin 开启事务，返回携带事务的ctx，由调用方负责Commit或Rollback
	Begin(ctx context.Context) (context.Context, Tx, error)
}

// Tx 已开启的事务
type Tx interface {
	Commit() error
	Rollback() error
}
