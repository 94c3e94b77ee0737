package handler

import (
	"github.com/gin-gonic/gin"

	appcrud "github.com/xiebiao/inventory/internal/application/crud"
	"github.com/xiebiao/inventory/internal/domain/product"
	"github.com/xiebiao/inventory/internal/interface/http/dto"
)

// ProductHandler 商品HTTP处理器
type ProductHandler struct {
	res *resource[product.Product, product.Patch, dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse]
}

// NewProductHandler 创建商品处理器
func NewProductHandler(svc *appcrud.Service[product.Product, product.Patch]) *ProductHandler {
	return &ProductHandler{
		res: &resource[product.Product, product.Patch, dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse]{
			svc:      svc,
			toEntity: (*dto.CreateProductRequest).ToEntity,
			toPatch:  (*dto.UpdateProductRequest).ToPatch,
			render:   dto.NewProductResponse,
		},
	}
}

// List 商品列表
// @Summary      商品列表
// @Tags         商品
// @Produce      json
// @Param        page      query int false "页码，从1开始"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.ProductResponse}}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) { h.res.list(c) }

// Count 商品总数
// @Summary      商品总数
// @Tags         商品
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CountResponse}
// @Router       /products/count [get]
func (h *ProductHandler) Count(c *gin.Context) { h.res.count(c) }

// Get 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) { h.res.get(c) }

// Create 创建商品
// @Summary      创建商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateProductRequest true "商品信息"
// @Success      201 {object} response.Response{data=dto.ProductResponse}
// @Failure      400 {object} response.Response "参数错误（价格、成本、库存不能为负）"
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) { h.res.create(c) }

// Update 部分更新商品
// @Summary      更新商品
// @Description  只修改请求中出现的字段
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                      true "商品ID"
// @Param        request body dto.UpdateProductRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) { h.res.update(c) }

// Delete 删除商品
// @Summary      删除商品
// @Tags         商品
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      202 {object} response.Response{data=dto.ProductResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Failure      409 {object} response.Response "商品仍被订单引用"
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) { h.res.delete(c) }

// BatchCreate 批量创建商品
// @Summary      批量创建商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []dto.CreateProductRequest true "商品列表"
// @Success      201 {object} response.Response{data=[]dto.ProductResponse}
// @Router       /products/batch [post]
func (h *ProductHandler) BatchCreate(c *gin.Context) { h.res.batchCreate(c) }

// BatchDelete 批量删除商品
// @Summary      批量删除商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.IDsRequest true "商品ID列表"
// @Success      202 {object} response.Response{data=dto.IDsResponse}
// @Router       /products/batch [delete]
func (h *ProductHandler) BatchDelete(c *gin.Context) { h.res.batchDelete(c) }
