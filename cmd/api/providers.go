package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appcrud "github.com/xiebiao/inventory/internal/application/crud"
	appreport "github.com/xiebiao/inventory/internal/application/report"
	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/internal/domain/orderproduct"
	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/domain/report"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/messaging"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/inventory/internal/interface/http/handler"
	"github.com/xiebiao/inventory/internal/interface/http/middleware"
	"github.com/xiebiao/inventory/pkg/jwt"
	"github.com/xiebiao/inventory/pkg/mq"
)

// 这里的Provider同时被手动组装（app.go）和Wire（wire.go）使用

// provideDB 打开数据库并迁移，cleanup关闭连接池
func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := rdb.NewDB(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化数据库失败: %w", err)
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideReportCache Redis未启用或不可用时退化为不缓存
func provideReportCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (report.Cache, func()) {
	if !cfg.Redis.Enabled {
		return report.NopCache{}, func() {}
	}

	client, err := redis.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn("Redis不可用，报表不使用缓存", zap.Error(err))
		return report.NopCache{}, func() {}
	}
	return redis.NewReportCache(client, cfg.Cache, log), func() { _ = client.Close() }
}

// provideOrderPublisher 消息队列未启用或不可用时不发布订单事件
func provideOrderPublisher(cfg *config.Config, log *zap.Logger) (order.EventPublisher, func()) {
	if !cfg.MQ.Enabled {
		return order.NopPublisher{}, func() {}
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, log)
	if err != nil {
		log.Warn("RabbitMQ不可用，不发布订单事件", zap.Error(err))
		return order.NopPublisher{}, func() {}
	}
	return messaging.NewOrderPublisher(pub), func() { _ = pub.Close() }
}

func provideProductService(repo product.Repository, cfg *config.Config) *appcrud.Service[product.Product, product.Patch] {
	return appcrud.NewService[product.Product, product.Patch](repo, appcrud.Options[product.Product, product.Patch]{
		Name:            "product",
		NotFound:        product.ErrProductNotFound,
		ValidateEntity:  (*product.Product).Validate,
		ValidatePatch:   (*product.Patch).Validate,
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	})
}

func provideOrderService(repo order.Repository, cfg *config.Config) *appcrud.Service[order.Order, order.Patch] {
	return appcrud.NewService[order.Order, order.Patch](repo, appcrud.Options[order.Order, order.Patch]{
		Name:            "order",
		NotFound:        order.ErrOrderNotFound,
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	})
}

func provideOrderProductService(repo orderproduct.Repository, cfg *config.Config) *appcrud.Service[orderproduct.OrderProduct, orderproduct.Patch] {
	return appcrud.NewService[orderproduct.OrderProduct, orderproduct.Patch](repo, appcrud.Options[orderproduct.OrderProduct, orderproduct.Patch]{
		Name:            "order_product",
		NotFound:        orderproduct.ErrOrderProductNotFound,
		ValidateEntity:  (*orderproduct.OrderProduct).Validate,
		ValidatePatch:   (*orderproduct.Patch).Validate,
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	})
}

func provideGetReportUseCase(repo report.Repository, cache report.Cache, cfg *config.Config, log *zap.Logger) *appreport.GetReportUseCase {
	return appreport.NewGetReportUseCase(repo, cache, cfg.Cache.ReportTTL, log)
}

func provideHealthHandler(db *gorm.DB) (*handler.HealthHandler, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return handler.NewHealthHandler(sqlDB), nil
}

// provideAuthMiddleware 未启用鉴权时返回nil，路由不挂载鉴权中间件
func provideAuthMiddleware(cfg *config.Config) *middleware.AuthMiddleware {
	if !cfg.Auth.Enabled {
		return nil
	}
	return middleware.NewAuthMiddleware(jwt.NewManager(cfg.Auth.Secret, cfg.Auth.TokenExpire, cfg.Auth.Issuer))
}

func provideHTTPServer(cfg *config.Config, engine http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
