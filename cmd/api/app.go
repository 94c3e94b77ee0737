package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	apporder "github.com/xiebiao/inventory/internal/application/order"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/inventory/internal/interface/http/handler"
	"github.com/xiebiao/inventory/internal/interface/http/router"
)

// buildServer 手动组装依赖，与wire.go中的initializeServer等价
// 依赖链：DB/Redis/RabbitMQ ← Repository ← Service/UseCase ← Handler ← Router ← http.Server
func buildServer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*http.Server, func(), error) {
	// 1. 基础设施
	db, closeDB, err := provideDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cache, closeCache := provideReportCache(ctx, cfg, log)
	publisher, closePublisher := provideOrderPublisher(cfg, log)
	cleanup := func() {
		closePublisher()
		closeCache()
		closeDB()
	}

	// 2. 仓储
	txm := rdb.NewTxManager(db)
	productRepo := rdb.NewProductRepository(db)
	orderRepo := rdb.NewOrderRepository(db)
	orderProductRepo := rdb.NewOrderProductRepository(db)
	reportRepo := rdb.NewReportRepository(db)

	// 3. 应用层
	productSvc := provideProductService(productRepo, cfg)
	orderSvc := provideOrderService(orderRepo, cfg)
	orderProductSvc := provideOrderProductService(orderProductRepo, cfg)
	createOrderUC := apporder.NewCreateOrderUseCase(orderRepo, publisher, log)
	getOrderUC := apporder.NewGetOrderUseCase(orderRepo)
	getReportUC := provideGetReportUseCase(reportRepo, cache, cfg, log)

	// 4. 接口层
	health, err := provideHealthHandler(db)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	handlers := router.Handlers{
		Product:      handler.NewProductHandler(productSvc),
		Order:        handler.NewOrderHandler(orderSvc, createOrderUC, getOrderUC),
		OrderProduct: handler.NewOrderProductHandler(orderProductSvc),
		Report:       handler.NewReportHandler(getReportUC),
		Health:       health,
	}
	engine := router.New(cfg, log, txm, provideAuthMiddleware(cfg), handlers)

	return provideHTTPServer(cfg, engine), cleanup, nil
}
