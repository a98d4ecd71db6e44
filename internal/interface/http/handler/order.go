package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/cafe/internal/application/order"
	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/internal/interface/http/middleware"
	"github.com/xiebiao/cafe/pkg/response"
)

// OrderHandler 订单HTTP处理器(顾客端)
type OrderHandler struct {
	createOrderUseCase *apporder.CreateOrderUseCase
	getOrderUseCase    *apporder.GetOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(createOrderUseCase *apporder.CreateOrderUseCase, getOrderUseCase *apporder.GetOrderUseCase) *OrderHandler {
	return &OrderHandler{
		createOrderUseCase: createOrderUseCase,
		getOrderUseCase:    getOrderUseCase,
	}
}

// CreateOrder 创建订单
// @Summary      创建订单
// @Description  下单成功返回订单号(orderId,如ORD-20240115-005)和取餐码(orderToken,如ESP-1234),同时清空购物车
// @Tags         订单模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      201 {object} response.Response{data=apporder.OrderDTO} "下单成功"
// @Failure      400 {object} response.Response "参数错误(空购物车、取餐时间已过等)"
// @Failure      401 {object} response.Response "未登录"
// @Failure      409 {object} response.Response "订单号或取餐码冲突,可重试"
// @Failure      503 {object} response.Response "取餐码分配失败"
// @Router       /orders [post]
//
// 教学说明:订单号和取餐码
// 1. 取餐码在事务外生成,最多尝试10次,每次查库确认未被占用
// 2. 订单号在事务内按"当天已有订单数+1"生成,统计失败时退化为时间戳订单号
// 3. 两者都有唯一索引兜底,并发撞号时返回409
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	// 1. 参数绑定
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	// 2. 转换为应用层请求
	items := make([]apporder.CreateOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = apporder.CreateOrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	// 3. 调用应用层用例
	result, err := h.createOrderUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:        middleware.MustGetUserID(c),
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		PickupTime:    req.PickupTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetOrder 订单详情(只能看自己的订单)
// @Summary      订单详情
// @Tags         订单模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单主键"
// @Success      200 {object} response.Response{data=apporder.OrderDTO}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.getOrderUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
