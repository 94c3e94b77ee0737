package handler

import (
	"github.com/gin-gonic/gin"

	appcrud "github.com/xiebiao/inventory/internal/application/crud"
	"github.com/xiebiao/inventory/internal/domain/orderproduct"
	"github.com/xiebiao/inventory/internal/interface/http/dto"
)

// OrderProductHandler 订单明细HTTP处理器
type OrderProductHandler struct {
	res *resource[orderproduct.OrderProduct, orderproduct.Patch, dto.CreateOrderProductRequest, dto.UpdateOrderProductRequest, dto.OrderProductResponse]
}

// NewOrderProductHandler 创建订单明细处理器
func NewOrderProductHandler(svc *appcrud.Service[orderproduct.OrderProduct, orderproduct.Patch]) *OrderProductHandler {
	return &OrderProductHandler{
		res: &resource[orderproduct.OrderProduct, orderproduct.Patch, dto.CreateOrderProductRequest, dto.UpdateOrderProductRequest, dto.OrderProductResponse]{
			svc:      svc,
			toEntity: (*dto.CreateOrderProductRequest).ToEntity,
			toPatch:  (*dto.UpdateOrderProductRequest).ToPatch,
			render:   dto.NewOrderProductResponse,
		},
	}
}

// List 订单明细列表
// @Summary      订单明细列表
// @Tags         订单明细
// @Produce      json
// @Param        page      query int false "页码，从1开始"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.OrderProductResponse}}
// @Router       /orders_products [get]
func (h *OrderProductHandler) List(c *gin.Context) { h.res.list(c) }

// Count 订单明细总数
// @Summary      订单明细总数
// @Tags         订单明细
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CountResponse}
// @Router       /orders_products/count [get]
func (h *OrderProductHandler) Count(c *gin.Context) { h.res.count(c) }

// Get 订单明细详情
// @Summary      订单明细详情
// @Tags         订单明细
// @Produce      json
// @Param        id path int true "明细ID"
// @Success      200 {object} response.Response{data=dto.OrderProductResponse}
// @Failure      404 {object} response.Response "订单明细不存在"
// @Router       /orders_products/{id} [get]
func (h *OrderProductHandler) Get(c *gin.Context) { h.res.get(c) }

// Create 创建订单明细
// @Summary      创建订单明细
// @Tags         订单明细
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderProductRequest true "明细信息"
// @Success      201 {object} response.Response{data=dto.OrderProductResponse}
// @Failure      409 {object} response.Response "订单中已有该商品，或订单/商品不存在"
// @Router       /orders_products [post]
func (h *OrderProductHandler) Create(c *gin.Context) { h.res.create(c) }

// Update 部分更新订单明细
// @Summary      更新订单明细
// @Tags         订单明细
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                           true "明细ID"
// @Param        request body dto.UpdateOrderProductRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.OrderProductResponse}
// @Router       /orders_products/{id} [put]
func (h *OrderProductHandler) Update(c *gin.Context) { h.res.update(c) }

// Delete 删除订单明细
// @Summary      删除订单明细
// @Tags         订单明细
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "明细ID"
// @Success      202 {object} response.Response{data=dto.OrderProductResponse}
// @Router       /orders_products/{id} [delete]
func (h *OrderProductHandler) Delete(c *gin.Context) { h.res.delete(c) }

// BatchCreate 批量创建订单明细
// @Summary      批量创建订单明细
// @Tags         订单明细
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []dto.CreateOrderProductRequest true "明细列表"
// @Success      201 {object} response.Response{data=[]dto.OrderProductResponse}
// @Router       /orders_products/batch [post]
func (h *OrderProductHandler) BatchCreate(c *gin.Context) { h.res.batchCreate(c) }

// BatchDelete 批量删除订单明细
// @Summary      批量删除订单明细
// @Tags         订单明细
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.IDsRequest true "明细ID列表"
// @Success      202 {object} response.Response{data=dto.IDsResponse}
// @Router       /orders_products/batch [delete]
func (h *OrderProductHandler) BatchDelete(c *gin.Context) { h.res.batchDelete(c) }
