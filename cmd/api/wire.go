//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 运行 `wire gen ./cmd/api` 生成wire_gen.go，生成的initializeServer与app.go中
// 手动组装的buildServer等价。Provider在providers.go中，两边共用。

package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	apporder "github.com/xiebiao/inventory/internal/application/order"
	"github.com/xiebiao/inventory/internal/domain/crud"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/inventory/internal/interface/http/handler"
	"github.com/xiebiao/inventory/internal/interface/http/router"
)

// infrastructureSet 数据库、缓存、消息队列、事务管理器
var infrastructureSet = wire.NewSet(
	provideDB,
	provideReportCache,
	provideOrderPublisher,
	rdb.NewTxManager,
	wire.Bind(new(crud.TxManager), new(*rdb.TxManager)),
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	rdb.NewProductRepository,
	rdb.NewOrderRepository,
	rdb.NewOrderProductRepository,
	rdb.NewReportRepository,
)

// applicationSet 通用服务与用例
var applicationSet = wire.NewSet(
	provideProductService,
	provideOrderService,
	provideOrderProductService,
	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	provideGetReportUseCase,
)

// httpSet Handler、中间件、路由
var httpSet = wire.NewSet(
	handler.NewProductHandler,
	handler.NewOrderHandler,
	handler.NewOrderProductHandler,
	handler.NewReportHandler,
	provideHealthHandler,
	provideAuthMiddleware,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
	wire.Bind(new(http.Handler), new(*gin.Engine)),
	provideHTTPServer,
)

// initializeServer 由Wire生成实现
func initializeServer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*http.Server, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		httpSet,
	)
	return nil, nil, nil
}
