package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appcrud "github.com/xiebiao/inventory/internal/application/crud"
	apporder "github.com/xiebiao/inventory/internal/application/order"
	appreport "github.com/xiebiao/inventory/internal/application/report"
	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/internal/domain/orderproduct"
	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/domain/report"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/inventory/internal/interface/http/handler"
	"github.com/xiebiao/inventory/internal/interface/http/middleware"
	"github.com/xiebiao/inventory/pkg/jwt"
)

const testSecret = "router-test-secret-0123456789"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine http.Handler
	db     *gorm.DB
	token  string
}

// newTestServer 基于SQLite内存库组装完整的路由
func newTestServer(t *testing.T, withAuth bool) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := rdb.Open(sqlite.Open(dsn), config.DatabaseConfig{Driver: "sqlite"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, rdb.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		Server:     config.ServerConfig{Mode: "test"},
		Pagination: config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}
	log := zap.NewNop()

	productRepo := rdb.NewProductRepository(db)
	orderRepo := rdb.NewOrderRepository(db)
	orderProductRepo := rdb.NewOrderProductRepository(db)

	productSvc := appcrud.NewService[product.Product, product.Patch](productRepo, appcrud.Options[product.Product, product.Patch]{
		Name:           "product",
		NotFound:       product.ErrProductNotFound,
		ValidateEntity: (*product.Product).Validate,
		ValidatePatch:  (*product.Patch).Validate,
	})
	orderSvc := appcrud.NewService[order.Order, order.Patch](orderRepo, appcrud.Options[order.Order, order.Patch]{
		Name:     "order",
		NotFound: order.ErrOrderNotFound,
	})
	orderProductSvc := appcrud.NewService[orderproduct.OrderProduct, orderproduct.Patch](orderProductRepo, appcrud.Options[orderproduct.OrderProduct, orderproduct.Patch]{
		Name:           "order_product",
		NotFound:       orderproduct.ErrOrderProductNotFound,
		ValidateEntity: (*orderproduct.OrderProduct).Validate,
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)

	h := Handlers{
		Product:      handler.NewProductHandler(productSvc),
		Order:        handler.NewOrderHandler(orderSvc, apporder.NewCreateOrderUseCase(orderRepo, nil, log), apporder.NewGetOrderUseCase(orderRepo)),
		OrderProduct: handler.NewOrderProductHandler(orderProductSvc),
		Report:       handler.NewReportHandler(appreport.NewGetReportUseCase(rdb.NewReportRepository(db), report.NopCache{}, time.Minute, log)),
		Health:       handler.NewHealthHandler(sqlDB),
	}

	s := &testServer{t: t, db: db}
	var auth *middleware.AuthMiddleware
	if withAuth {
		m := jwt.NewManager(testSecret, time.Hour, "inventory")
		auth = middleware.NewAuthMiddleware(m)
		s.token, err = m.GenerateToken("router-test", middleware.WriteScope)
		require.NoError(t, err)
	}

	s.engine = New(cfg, log, rdb.NewTxManager(db), auth, h)
	return s
}

func (s *testServer) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *testServer) createProduct(name, price, cost string, stock int) uint {
	s.t.Helper()

	w, env := s.do(http.MethodPost, "/api/v1/products", map[string]interface{}{
		"product_name": name,
		"price":        json.Number(price),
		"cost":         json.Number(cost),
		"stock":        stock,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var p struct {
		ID uint `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &p))
	return p.ID
}

func (s *testServer) count(table string) int64 {
	s.t.Helper()
	var n int64
	require.NoError(s.t, s.db.Table(table).Count(&n).Error)
	return n
}

func TestRouter_OrderLifecycle(t *testing.T) {
	s := newTestServer(t, false)
	widget := s.createProduct("Widget", "100.00", "50.00", 10)

	// 下单
	w, env := s.do(http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"product_ids": []uint{widget},
		"amounts":     []int{10},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		OrderID uint `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.OrderID)

	// 订单详情
	w, env = s.do(http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", created.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail struct {
		OrderID  uint `json:"order_id"`
		Products []struct {
			ProductID   uint    `json:"product_id"`
			ProductName string  `json:"product_name"`
			Amount      int     `json:"amount"`
			Price       float64 `json:"price"`
			Cost        float64 `json:"cost"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, created.OrderID, detail.OrderID)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, widget, detail.Products[0].ProductID)
	assert.Equal(t, "Widget", detail.Products[0].ProductName)
	assert.Equal(t, 10, detail.Products[0].Amount)
	assert.Equal(t, 100.0, detail.Products[0].Price)
	assert.Equal(t, 50.0, detail.Products[0].Cost)

	// 当天报表
	today := time.Now().UTC().Format("2006-01-02")
	w, env = s.do(http.MethodGet, "/api/v1/reports?start_date="+today+"&end_date="+today, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"total_revenue":1000.00,"total_profit":500.00,"total_units_sold":10,"total_returns":0}`, string(env.Data))

	// 被订单引用的商品不能删除
	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", widget), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.EqualValues(t, 1, s.count("products"))
}

func TestRouter_CreateOrderAtomic(t *testing.T) {
	s := newTestServer(t, false)
	a := s.createProduct("A", "1.00", "0.50", 0)
	b := s.createProduct("B", "2.00", "1.00", 0)

	tests := []struct {
		name       string
		productIDs []uint
		amounts    []int
		wantStatus int
	}{
		{"长度不一致", []uint{a, b}, []int{1}, http.StatusBadRequest},
		{"商品重复", []uint{a, a}, []int{1, 2}, http.StatusConflict},
		{"商品不存在", []uint{a, 9999}, []int{1, 1}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.do(http.MethodPost, "/api/v1/orders", map[string]interface{}{
				"product_ids": tt.productIDs,
				"amounts":     tt.amounts,
			})
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.NotZero(t, env.Code)

			// 不留下任何订单或明细
			assert.EqualValues(t, 0, s.count("orders"))
			assert.EqualValues(t, 0, s.count("orders_products"))
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	s := newTestServer(t, false)

	for _, path := range []string{"/api/v1/orders/42", "/api/v1/products/42", "/api/v1/orders_products/42"} {
		w, env := s.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.NotEmpty(t, env.Message)
	}

	w, _ := s.do(http.MethodGet, "/api/v1/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	t.Run("重复查询结果一致", func(t *testing.T) {
		s.createProduct("Kept", "1.00", "1.00", 1)
		products, orders := s.count("products"), s.count("orders")

		for i := 0; i < 2; i++ {
			w, _ := s.do(http.MethodGet, "/api/v1/orders/42", nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
		}
		assert.Equal(t, products, s.count("products"))
		assert.Equal(t, orders, s.count("orders"))
	})
}

func TestRouter_ProductCRUD(t *testing.T) {
	s := newTestServer(t, false)

	for i := 0; i < 3; i++ {
		s.createProduct(fmt.Sprintf("P%d", i), "10.00", "5.00", i)
	}

	t.Run("分页", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/api/v1/products?page=2&page_size=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var page struct {
			List       []map[string]interface{} `json:"list"`
			Total      int64                    `json:"total"`
			Page       int                      `json:"page"`
			TotalPages int                      `json:"total_pages"`
			PrevPage   *int                     `json:"prev_page"`
			NextPage   *int                     `json:"next_page"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Len(t, page.List, 1)
		assert.EqualValues(t, 3, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.NotNil(t, page.PrevPage)
		assert.Equal(t, 1, *page.PrevPage)
		assert.Nil(t, page.NextPage)
	})

	t.Run("超大页码返回空页", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/api/v1/products?page=9223372036854775807", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var page struct {
			List  []map[string]interface{} `json:"list"`
			Total int64                    `json:"total"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Empty(t, page.List)
		assert.EqualValues(t, 3, page.Total)
	})

	t.Run("总数", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/api/v1/products/count", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":3}`, string(env.Data))
	})

	t.Run("部分更新", func(t *testing.T) {
		w, env := s.do(http.MethodPut, "/api/v1/products/1", map[string]interface{}{"stock": 7})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var p map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, float64(7), p["stock"])
		assert.Equal(t, "P0", p["product_name"])
	})

	t.Run("负数价格", func(t *testing.T) {
		w, _ := s.do(http.MethodPost, "/api/v1/products", map[string]interface{}{
			"price": -1, "cost": 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.EqualValues(t, 3, s.count("products"))
	})

	t.Run("批量删除只返回存在的ID", func(t *testing.T) {
		w, env := s.do(http.MethodDelete, "/api/v1/products/batch", map[string]interface{}{"ids": []uint{2, 3, 99}})
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		assert.JSONEq(t, `{"ids":[2,3]}`, string(env.Data))
		assert.EqualValues(t, 1, s.count("products"))
	})
}

func TestRouter_BatchCreateRollsBack(t *testing.T) {
	s := newTestServer(t, false)

	w, _ := s.do(http.MethodPost, "/api/v1/products/batch", []map[string]interface{}{
		{"product_name": "ok", "price": 1, "cost": 1},
		{"product_name": "bad", "price": 1, "cost": -1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, s.count("products"))
}

func TestRouter_Report(t *testing.T) {
	s := newTestServer(t, false)

	t.Run("开始日期晚于结束日期", func(t *testing.T) {
		w, _ := s.do(http.MethodGet, "/api/v1/reports?start_date=2024-02-01&end_date=2024-01-01", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("缺少参数", func(t *testing.T) {
		w, _ := s.do(http.MethodGet, "/api/v1/reports?start_date=2024-01-01", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("没有订单", func(t *testing.T) {
		w, env := s.do(http.MethodGet, "/api/v1/reports?start_date=2024-01-01&end_date=2024-01-31", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total_revenue":0.00,"total_profit":0.00,"total_units_sold":0,"total_returns":0}`, string(env.Data))
	})
}

func TestRouter_Ping(t *testing.T) {
	s := newTestServer(t, false)

	w, env := s.do(http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, string(env.Data))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Auth(t *testing.T) {
	s := newTestServer(t, true)
	s.createProduct("Widget", "1.00", "1.00", 0)

	token := s.token
	s.token = ""

	t.Run("读接口公开", func(t *testing.T) {
		w, _ := s.do(http.MethodGet, "/api/v1/products", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("写接口需要Token", func(t *testing.T) {
		w, _ := s.do(http.MethodPost, "/api/v1/products", map[string]interface{}{"price": 1, "cost": 1})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.EqualValues(t, 1, s.count("products"))
	})

	t.Run("携带Token", func(t *testing.T) {
		s.token = token
		defer func() { s.token = "" }()
		s.createProduct("Gadget", "2.00", "1.00", 0)
		assert.EqualValues(t, 2, s.count("products"))
	})
}
