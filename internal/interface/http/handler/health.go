package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/inventory/pkg/errors"
	"github.com/xiebiao/inventory/pkg/response"
)

// Pinger 可探活的依赖（数据库）
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler 健康检查
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ping 健康检查
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      500 {object} response.Response "数据库不可用"
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			response.Error(c, apperrors.ErrDatabaseError.WithErr(err))
			return
		}
	}
	response.Success(c, gin.H{"message": "pong"})
}
