package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/cafe/internal/application/order"
	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/pkg/response"
)

// AdminOrderHandler 订单HTTP处理器(店员端,需要管理员)
type AdminOrderHandler struct {
	listOrdersUseCase  *apporder.ListOrdersUseCase
	manageOrderUseCase *apporder.ManageOrderUseCase
}

// NewAdminOrderHandler 创建店员端订单处理器
func NewAdminOrderHandler(listOrdersUseCase *apporder.ListOrdersUseCase, manageOrderUseCase *apporder.ManageOrderUseCase) *AdminOrderHandler {
	return &AdminOrderHandler{
		listOrdersUseCase:  listOrdersUseCase,
		manageOrderUseCase: manageOrderUseCase,
	}
}

// ListOrders 订单列表
// @Summary      订单列表
// @Description  按创建时间倒序;filter=pending|completed,或按status精确筛选
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        filter query string false "pending|completed"
// @Param        status query string false "PENDING|COMPLETED"
// @Success      200 {object} response.Response{data=[]apporder.OrderDTO}
// @Failure      403 {object} response.Response "无权限"
// @Router       /admin/orders [get]
func (h *AdminOrderHandler) ListOrders(c *gin.Context) {
	var q dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		Filter: q.Filter,
		Status: q.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CompleteOrder 完成订单
// @Summary      完成订单
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单主键"
// @Success      200 {object} response.Response{data=apporder.OrderDTO}
// @Failure      400 {object} response.Response "订单已完成"
// @Router       /admin/orders/{id}/complete [put]
func (h *AdminOrderHandler) CompleteOrder(c *gin.Context) {
	h.transition(c, h.manageOrderUseCase.Complete)
}

// MarkPaid 到店付款确认收款
// @Summary      确认收款
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单主键"
// @Success      200 {object} response.Response{data=apporder.OrderDTO}
// @Failure      400 {object} response.Response "非到店付款订单或已收款"
// @Router       /admin/orders/{id}/mark-paid [put]
func (h *AdminOrderHandler) MarkPaid(c *gin.Context) {
	h.transition(c, h.manageOrderUseCase.MarkPaid)
}

// VerifyAndComplete 核验线上付款并完成
// @Summary      核验并完成
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单主键"
// @Success      200 {object} response.Response{data=apporder.OrderDTO}
// @Failure      400 {object} response.Response "非线上支付订单或已完成"
// @Router       /admin/orders/{id}/verify-complete [put]
func (h *AdminOrderHandler) VerifyAndComplete(c *gin.Context) {
	h.transition(c, h.manageOrderUseCase.VerifyAndComplete)
}

// DeleteOrder 删除订单
// @Summary      删除订单
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单主键"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /admin/orders/{id} [delete]
func (h *AdminOrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.manageOrderUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *AdminOrderHandler) transition(c *gin.Context, action func(ctx context.Context, id uint) (*apporder.OrderDTO, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := action(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
