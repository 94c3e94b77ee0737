package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/pkg/jwt"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusNotFound, "missing")
	})

	t.Run("沿用客户端的请求ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-123", fields["request_id"])
		assert.EqualValues(t, http.StatusNotFound, fields["status"])
	})

	t.Run("生成请求ID", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/items/1")
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
		logs.TakeAll()
	})
}

func TestCORS(t *testing.T) {
	cfg := config.CORSConfig{
		Enabled:      true,
		AllowOrigins: []string{"https://shop.example.com"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       600,
	}
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(method, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("允许的Origin", func(t *testing.T) {
		w := request(http.MethodGet, "https://shop.example.com")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("预检请求", func(t *testing.T) {
		w := request(http.MethodOptions, "https://shop.example.com")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("不允许的Origin", func(t *testing.T) {
		w := request(http.MethodGet, "https://evil.example.com")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("同源请求", func(t *testing.T) {
		w := request(http.MethodGet, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestAuthMiddleware_RequireWrite(t *testing.T) {
	manager := jwt.NewManager("middleware-test-secret", time.Hour, "inventory")
	auth := NewAuthMiddleware(manager)

	r := gin.New()
	r.Use(auth.RequireWrite())
	handler := func(c *gin.Context) {
		c.String(http.StatusOK, GetSubject(c))
	}
	r.GET("/", handler)
	r.POST("/", handler)

	writeToken, err := manager.GenerateToken("importer", WriteScope)
	require.NoError(t, err)
	readToken, err := manager.GenerateToken("viewer", "read")
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"读接口不需要Token", http.MethodGet, "", http.StatusOK, ""},
		{"缺少Token", http.MethodPost, "", http.StatusUnauthorized, ""},
		{"格式错误", http.MethodPost, "Token " + writeToken, http.StatusUnauthorized, ""},
		{"无效Token", http.MethodPost, "Bearer not-a-token", http.StatusUnauthorized, ""},
		{"没有写权限", http.MethodPost, "Bearer " + readToken, http.StatusForbidden, ""},
		{"有写权限", http.MethodPost, "Bearer " + writeToken, http.StatusOK, "importer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
