package handler

import (
	"github.com/gin-gonic/gin"

	appreport "github.com/xiebiao/inventory/internal/application/report"
	"github.com/xiebiao/inventory/internal/interface/http/dto"
	"github.com/xiebiao/inventory/pkg/response"
)

// ReportHandler 报表HTTP处理器
type ReportHandler struct {
	getReportUC *appreport.GetReportUseCase
}

// NewReportHandler 创建报表处理器
func NewReportHandler(getReportUC *appreport.GetReportUseCase) *ReportHandler {
	return &ReportHandler{getReportUC: getReportUC}
}

// GetReport 销售报表
// @Summary      销售报表
// @Description  统计start_date到end_date（均包含，UTC）之间创建的订单：收入、利润、销量与退货订单数
// @Tags         报表
// @Produce      json
// @Param        start_date query string true "开始日期 YYYY-MM-DD"
// @Param        end_date   query string true "结束日期 YYYY-MM-DD"
// @Success      200 {object} response.Response{data=dto.ReportResponse}
// @Failure      400 {object} response.Response "日期格式错误或开始日期晚于结束日期"
// @Router       /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	r, err := h.getReportUC.Execute(c.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewReportResponse(r))
}
