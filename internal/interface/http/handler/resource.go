package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcrud "github.com/xiebiao/inventory/internal/application/crud"
	"github.com/xiebiao/inventory/internal/domain/crud"
	"github.com/xiebiao/inventory/internal/interface/http/dto"
	apperrors "github.com/xiebiao/inventory/pkg/errors"
	"github.com/xiebiao/inventory/pkg/response"
)

// resource 通用的增删改查处理逻辑
// E/P是领域实体与补丁，C/U是创建与更新请求，R是响应
// 各资源的Handler持有一个resource，在带swagger注释的方法中调用它
type resource[E any, P any, C any, U any, R any] struct {
	svc      *appcrud.Service[E, P]
	toEntity func(*C) *E
	toPatch  func(*U) *P
	render   func(*E) R
}

func (r *resource[E, P, C, U, R]) list(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	page, err := r.svc.List(c.Request.Context(), crud.Paging{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, r.renderAll(page.Items), page.Total, page.Page, page.PageSize)
}

func (r *resource[E, P, C, U, R]) count(c *gin.Context) {
	total, err := r.svc.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CountResponse{Count: total})
}

func (r *resource[E, P, C, U, R]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, r.render(e))
}

func (r *resource[E, P, C, U, R]) create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	e, err := r.svc.Create(c.Request.Context(), r.toEntity(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, r.render(e))
}

func (r *resource[E, P, C, U, R]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	e, err := r.svc.Update(c.Request.Context(), id, r.toPatch(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, r.render(e))
}

func (r *resource[E, P, C, U, R]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := r.svc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, r.render(e))
}

// batchCreate 请求体为数组，全部成功或全部失败
func (r *resource[E, P, C, U, R]) batchCreate(c *gin.Context) {
	var reqs []C
	if err := c.ShouldBindJSON(&reqs); err != nil {
		bindError(c, err)
		return
	}

	entities := make([]*E, 0, len(reqs))
	for i := range reqs {
		entities = append(entities, r.toEntity(&reqs[i]))
	}

	created, err := r.svc.BatchCreate(c.Request.Context(), entities)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, r.renderAll(created))
}

func (r *resource[E, P, C, U, R]) batchDelete(c *gin.Context) {
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ids, err := r.svc.BatchDelete(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.IDsResponse{IDs: ids})
}

func (r *resource[E, P, C, U, R]) renderAll(items []*E) []R {
	out := make([]R, 0, len(items))
	for _, e := range items {
		out = append(out, r.render(e))
	}
	return out
}

// parseID 解析路径参数id，失败时已写入400响应
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperrors.ErrInvalidParams.WithMessage("无效的ID: "+c.Param("id")))
		return 0, false
	}
	return uint(id), true
}

func bindError(c *gin.Context, err error) {
	response.Error(c, apperrors.ErrBindError.WithMessage("参数错误: "+err.Error()))
}
