package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，前三位与HTTP状态码一致（40400 → 404）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，只写日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 错误码相同即视为同一类错误
// 预定义错误经过WithErr包装后仍可以用errors.Is判断
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus 由业务错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// WithErr 复制一份错误并附带内部原因
func (e *AppError) WithErr(err error) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Err: err}
}

// WithMessage 复制一份错误并替换提示信息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{Code: e.Code, Message: message, Err: e.Err}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（数据库、缓存等），统一返回内部错误码
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：前三位即HTTP状态码
// - 400xx: 参数校验失败
// - 401xx: 认证失败
// - 404xx: 资源不存在
// - 409xx: 唯一约束、外键约束冲突
// - 500xx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 认证错误（40100-40199）
	ErrCodeUnauthorized = 40100 // 未认证
	ErrCodeInvalidToken = 40101 // Token无效
	ErrCodeTokenExpired = 40102 // Token过期

	// 权限错误（40300-40399）
	ErrCodeForbidden = 40300 // 权限不足

	// 资源错误（40400-40499）
	ErrCodeNotFound             = 40400 // 资源不存在(通用)
	ErrCodeProductNotFound      = 40401 // 商品不存在
	ErrCodeOrderNotFound        = 40402 // 订单不存在
	ErrCodeOrderProductNotFound = 40403 // 订单明细不存在

	// 参数错误（40000-40099）
	ErrCodeInvalidParams  = 40000 // 参数错误(通用)
	ErrCodeBindError      = 40001 // 参数绑定失败
	ErrCodeLengthMismatch = 40002 // 商品与数量个数不一致
	ErrCodeInvalidDate    = 40003 // 日期格式错误
	ErrCodeInvalidRange   = 40004 // 日期区间错误
	ErrCodeInvalidAmount  = 40005 // 金额/库存非法

	// 冲突错误（40900-40999）
	ErrCodeConflict       = 40900 // 数据冲突(通用)
	ErrCodeDuplicateEntry = 40901 // 重复记录
	ErrCodeReferenced     = 40902 // 外键约束冲突
)

// =========================================
// 预定义错误
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 认证
	ErrUnauthorized = New(ErrCodeUnauthorized, "缺少访问令牌")
	ErrInvalidToken = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired = New(ErrCodeTokenExpired, "Token已过期")
	ErrForbidden    = New(ErrCodeForbidden, "权限不足")

	// 资源不存在
	ErrNotFound = New(ErrCodeNotFound, "Item not found")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")

	// 冲突
	ErrConflict       = New(ErrCodeConflict, "数据冲突")
	ErrDuplicateEntry = New(ErrCodeDuplicateEntry, "记录已存在")
	ErrReferenced     = New(ErrCodeReferenced, "关联数据不存在或仍被引用")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
