package handler

import (
	"github.com/gin-gonic/gin"

	appcrud "github.com/xiebiao/inventory/internal/application/crud"
	apporder "github.com/xiebiao/inventory/internal/application/order"
	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/internal/interface/http/dto"
	"github.com/xiebiao/inventory/pkg/response"
)

// OrderHandler 订单HTTP处理器
// 创建与详情走专门的用例，其余操作使用通用服务
type OrderHandler struct {
	res      *resource[order.Order, order.Patch, dto.CreateOrderRequest, dto.UpdateOrderRequest, dto.OrderResponse]
	createUC *apporder.CreateOrderUseCase
	getUC    *apporder.GetOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	svc *appcrud.Service[order.Order, order.Patch],
	createUC *apporder.CreateOrderUseCase,
	getUC *apporder.GetOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		res: &resource[order.Order, order.Patch, dto.CreateOrderRequest, dto.UpdateOrderRequest, dto.OrderResponse]{
			svc:     svc,
			toPatch: (*dto.UpdateOrderRequest).ToPatch,
			render:  dto.NewOrderResponse,
		},
		createUC: createUC,
		getUC:    getUC,
	}
}

// List 订单列表
// @Summary      订单列表
// @Tags         订单
// @Produce      json
// @Param        page      query int false "页码，从1开始"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.OrderResponse}}
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) { h.res.list(c) }

// Count 订单总数
// @Summary      订单总数
// @Tags         订单
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CountResponse}
// @Router       /orders/count [get]
func (h *OrderHandler) Count(c *gin.Context) { h.res.count(c) }

// Get 订单详情（含商品明细）
// @Summary      订单详情
// @Description  一次查询返回订单及其全部商品；没有明细的订单products为空数组
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderDetailResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderDetailResponse(detail))
}

// Create 下单
// @Summary      下单
// @Description  原子地创建订单及全部明细；amount为负数表示退货
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "商品ID与数量"
// @Success      201 {object} response.Response{data=dto.CreateOrderResponse}
// @Failure      400 {object} response.Response "product_ids与amounts长度不一致"
// @Failure      409 {object} response.Response "商品重复或不存在"
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	// 1. 参数绑定
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	// 2. 调用用例（长度校验在访问数据库之前）
	orderID, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateOrderResponse{OrderID: orderID})
}

// BatchCreate 批量下单
// @Summary      批量下单
// @Description  每笔订单都走原子下单；任意一笔失败则全部回滚
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []dto.CreateOrderRequest true "订单列表"
// @Success      201 {object} response.Response{data=dto.BatchCreateOrderResponse}
// @Router       /orders/batch [post]
func (h *OrderHandler) BatchCreate(c *gin.Context) {
	var reqs []dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		bindError(c, err)
		return
	}

	cmds := make([]order.CreateCommand, 0, len(reqs))
	for i := range reqs {
		cmds = append(cmds, reqs[i].ToCommand())
	}

	ids, err := h.createUC.ExecuteBatch(c.Request.Context(), cmds)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BatchCreateOrderResponse{OrderIDs: ids})
}

// Update 修改订单创建时间
// @Summary      更新订单
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                    true "订单ID"
// @Param        request body dto.UpdateOrderRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) { h.res.update(c) }

// Delete 删除订单
// @Summary      删除订单
// @Description  订单仍有明细时返回409
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      202 {object} response.Response{data=dto.OrderResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Failure      409 {object} response.Response "订单仍有明细"
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) { h.res.delete(c) }

// BatchDelete 批量删除订单
// @Summary      批量删除订单
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.IDsRequest true "订单ID列表"
// @Success      202 {object} response.Response{data=dto.IDsResponse}
// @Router       /orders/batch [delete]
func (h *OrderHandler) BatchDelete(c *gin.Context) { h.res.batchDelete(c) }
