package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/inventory/pkg/errors"
	"github.com/xiebiao/inventory/pkg/jwt"
	"github.com/xiebiao/inventory/pkg/response"
)

const (
	// ClaimsKey gin.Context中Token声明的key
	ClaimsKey = "claims"
	// WriteScope 写接口需要的权限
	WriteScope = "write"
)

// AuthMiddleware JWT认证中间件
// 读接口公开，写接口（POST/PUT/DELETE）需要携带write权限的Bearer Token
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// RequireWrite 写接口鉴权
// 使用方式：
//
//	api := r.Group("/api/v1")
//	api.Use(authMiddleware.RequireWrite())
func (m *AuthMiddleware) RequireWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isReadOnly(c.Request.Method) {
			c.Next()
			return
		}

		// 1. 从Header提取Token，格式：Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, apperrors.ErrInvalidToken.WithMessage("Token格式错误"))
			c.Abort()
			return
		}

		// 2. 验证Token并解析Claims
		claims, err := m.jwtManager.ParseToken(parts[1])
		if err != nil {
			response.Error(c, err) // ErrTokenExpired、ErrInvalidToken
			c.Abort()
			return
		}

		// 3. 检查权限
		if !claims.HasScope(WriteScope) {
			response.Error(c, apperrors.ErrForbidden.WithMessage("Token没有写权限"))
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetSubject 当前Token的subject，未认证时为空
func GetSubject(c *gin.Context) string {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims.Subject
		}
	}
	return ""
}

func isReadOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
