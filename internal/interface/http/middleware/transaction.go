package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/crud"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
	"github.com/xiebiao/inventory/pkg/metrics"
	"github.com/xiebiao/inventory/pkg/response"
)

// Transaction 请求级事务中间件
// 1. 请求开始时开启事务，事务通过c.Request.Context()传给仓储
// 2. Handler写出的响应先缓存在内存中
// 3. 状态码>=400、c.Errors非空或发生panic时回滚
// 4. 否则提交，提交成功后执行AfterCommit回调，再把缓存的响应写给客户端
// 5. 提交失败改为返回500
func Transaction(txm crud.TxManager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, tx, err := txm.Begin(c.Request.Context())
		if err != nil {
			response.Error(c, apperrors.ErrDatabaseError.WithErr(err))
			c.Abort()
			return
		}
		ctx, hooks := crud.WithCommitHooks(ctx)
		c.Request = c.Request.WithContext(ctx)

		original := c.Writer
		buf := &bufferedWriter{ResponseWriter: original, status: http.StatusOK}
		c.Writer = buf

		finished := false
		defer func() {
			if finished {
				return
			}
			// 只有panic会走到这里
			hooks.Discard()
			c.Writer = original
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("事务回滚失败", zap.Error(rbErr))
			}
			metrics.IncCounterVec(metrics.DBTransactionsTotal, map[string]string{"result": "rollback"})
		}()

		c.Next()

		if buf.status >= http.StatusBadRequest || len(c.Errors) > 0 {
			hooks.Discard()
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("事务回滚失败", zap.Error(rbErr))
			}
			metrics.IncCounterVec(metrics.DBTransactionsTotal, map[string]string{"result": "rollback"})
			log.Debug("请求失败，事务已回滚",
				zap.String("path", c.FullPath()),
				zap.Int("status", buf.status),
			)
			finished = true
			c.Writer = original
			buf.flushTo(original)
			return
		}

		if err := tx.Commit(); err != nil {
			hooks.Discard()
			finished = true
			c.Writer = original
			metrics.IncCounterVec(metrics.DBTransactionsTotal, map[string]string{"result": "commit_failed"})
			response.Error(c, apperrors.ErrDatabaseError.WithErr(err))
			return
		}

		finished = true
		metrics.IncCounterVec(metrics.DBTransactionsTotal, map[string]string{"result": "commit"})
		hooks.Run()
		c.Writer = original
		buf.flushTo(original)
	}
}

// bufferedWriter 缓存响应，直到事务结束
// Header()直接使用原始writer，状态码与body缓存在内存中
type bufferedWriter struct {
	gin.ResponseWriter
	body   bytes.Buffer
	status int
	wrote  bool
}

func (w *bufferedWriter) WriteHeader(code int) {
	if code > 0 {
		w.status = code
	}
}

func (w *bufferedWriter) WriteHeaderNow() {
	w.wrote = true
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	w.wrote = true
	return w.body.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.wrote = true
	return w.body.WriteString(s)
}

func (w *bufferedWriter) Status() int {
	return w.status
}

func (w *bufferedWriter) Size() int {
	if !w.wrote {
		return -1
	}
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.wrote
}

// Flush 缓存期间不向客户端推送
func (w *bufferedWriter) Flush() {}

func (w *bufferedWriter) flushTo(dst gin.ResponseWriter) {
	dst.WriteHeader(w.status)
	if w.body.Len() > 0 {
		_, _ = dst.Write(w.body.Bytes())
	}
}
