package report

import (
	apperrors "github.com/xiebiao/inventory/pkg/errors"
)

var (
	ErrInvalidDate  = apperrors.New(apperrors.ErrCodeInvalidDate, "日期格式错误，应为YYYY-MM-DD")
	ErrInvalidRange = apperrors.New(apperrors.ErrCodeInvalidRange, "start_date不能晚于end_date")
)
