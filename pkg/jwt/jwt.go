package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// Manager 访问令牌管理器
// 设计说明：
// 1. 库存服务没有用户体系，令牌只标识调用方（Subject）
// 2. 写接口（POST/PUT/DELETE）开启鉴权后需要携带令牌
// 3. 使用HS256对称签名，密钥来自配置
type Manager struct {
	secret []byte
	expire time.Duration
	issuer string
	now    func() time.Time
}

// NewManager 创建令牌管理器
func NewManager(secret string, expire time.Duration, issuer string) *Manager {
	return &Manager{
		secret: []byte(secret),
		expire: expire,
		issuer: issuer,
		now:    time.Now,
	}
}

// Claims 令牌声明
type Claims struct {
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// HasScope 判断令牌是否包含指定权限
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope || s == "*" {
			return true
		}
	}
	return false
}

// GenerateToken 为调用方签发令牌
func (m *Manager) GenerateToken(subject string, scopes ...string) (string, error) {
	now := m.now()
	claims := Claims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   subject,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "签发Token失败")
	}
	return token, nil
}

// ParseToken 解析并验证令牌
// 1. 校验签名算法，防止alg=none攻击
// 2. 校验exp、nbf与签发方
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken.WithErr(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
