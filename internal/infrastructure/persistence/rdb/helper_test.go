package rdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
)

// newTestDB 每个测试一个独立的SQLite内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := Open(sqlite.Open(dsn), config.DatabaseConfig{Driver: "sqlite"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createProduct(t *testing.T, repo product.Repository, name, price, cost string, stock int) *product.Product {
	t.Helper()

	p, err := repo.Create(context.Background(), &product.Product{
		ProductName: &name,
		Price:       decimal.RequireFromString(price),
		Cost:        decimal.RequireFromString(cost),
		Stock:       stock,
	})
	require.NoError(t, err)
	return p
}

func day(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}

func newProduct(name string) *product.Product {
	return &product.Product{ProductName: &name, Price: decimal.NewFromInt(1), Cost: decimal.NewFromInt(1)}
}
