package rdb

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

// translateError 将数据库错误转换为业务错误
// 1. 唯一约束 → 409 ErrDuplicateEntry
// 2. 外键约束（引用不存在或仍被引用）→ 409 ErrReferenced
// 3. 其他 → 500，原始错误只写日志
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}
	switch {
	case isDuplicateError(err):
		return apperrors.ErrDuplicateEntry.WithErr(err)
	case isForeignKeyError(err):
		return apperrors.ErrReferenced.WithErr(err)
	default:
		return apperrors.Wrap(err, message)
	}
}

// isDuplicateError 判断是否为唯一约束冲突
// 驱动未实现错误转换时按错误信息兜底
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "Duplicate entry") // mysql
}

// isForeignKeyError 判断是否为外键约束冲突
func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || // sqlite
		strings.Contains(msg, "violates foreign key constraint") || // postgres
		strings.Contains(msg, "a foreign key constraint fails") // mysql
}
