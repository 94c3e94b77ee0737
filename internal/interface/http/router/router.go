package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/inventory/docs"
	"github.com/xiebiao/inventory/internal/domain/crud"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/interface/http/handler"
	"github.com/xiebiao/inventory/internal/interface/http/middleware"
	"github.com/xiebiao/inventory/pkg/metrics"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	Product      *handler.ProductHandler
	Order        *handler.OrderHandler
	OrderProduct *handler.OrderProductHandler
	Report       *handler.ReportHandler
	Health       *handler.HealthHandler
}

// crudHandler 标准的8个增删改查路由
type crudHandler interface {
	List(c *gin.Context)
	Count(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	BatchCreate(c *gin.Context)
	BatchDelete(c *gin.Context)
}

// New 创建gin引擎并注册路由
// 中间件顺序：日志 → panic恢复 → 指标 → 追踪 → CORS → （/api/v1）写鉴权 → 请求事务
// auth为nil表示不启用鉴权
func New(cfg *config.Config, log *zap.Logger, txm crud.TxManager, auth *middleware.AuthMiddleware, h Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	metrics.InitMetrics()

	r := gin.New()
	r.Use(
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.Metrics(),
		middleware.Tracing(),
		middleware.CORS(cfg.CORS),
	)

	r.GET("/ping", h.Health.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if auth != nil {
		api.Use(auth.RequireWrite())
	}
	api.Use(middleware.Transaction(txm, log))

	registerCRUD(api, "/products", h.Product)
	registerCRUD(api, "/orders", h.Order)
	registerCRUD(api, "/orders_products", h.OrderProduct)
	api.GET("/reports", h.Report.GetReport)

	return r
}

func registerCRUD(g *gin.RouterGroup, path string, h crudHandler) {
	rg := g.Group(path)
	rg.GET("", h.List)
	rg.GET("/count", h.Count)
	rg.POST("", h.Create)
	rg.POST("/batch", h.BatchCreate)
	rg.DELETE("/batch", h.BatchDelete)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
