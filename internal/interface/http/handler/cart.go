package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/cafe/internal/application/cart"
	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/internal/interface/http/middleware"
	"github.com/xiebiao/cafe/pkg/response"
)

// CartHandler 购物车HTTP处理器(需要登录)
type CartHandler struct {
	cartUseCase *appcart.CartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(cartUseCase *appcart.CartUseCase) *CartHandler {
	return &CartHandler{cartUseCase: cartUseCase}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Description  没有购物车时返回空购物车;已下架的菜品显示为Unknown
// @Tags         购物车模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcart.CartDTO}
// @Failure      401 {object} response.Response "未登录"
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.cartUseCase.Get(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddToCart 加入购物车
// @Summary      加入购物车
// @Tags         购物车模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddToCartRequest true "菜品和数量"
// @Success      200 {object} response.Response{data=appcart.CartDTO}
// @Failure      404 {object} response.Response "菜品不存在"
// @Router       /cart/add [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.cartUseCase.Add(c.Request.Context(), middleware.MustGetUserID(c), req.ItemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateCart 修改数量
// @Summary      修改数量
// @Description  quantity为0时移除该菜品
// @Tags         购物车模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateCartRequest true "菜品和数量"
// @Success      200 {object} response.Response{data=appcart.CartDTO}
// @Failure      404 {object} response.Response "购物车不存在或无此菜品"
// @Router       /cart/update [patch]
func (h *CartHandler) UpdateCart(c *gin.Context) {
	var req dto.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.cartUseCase.Update(c.Request.Context(), middleware.MustGetUserID(c), req.ItemID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveItem 移除菜品
// @Summary      移除菜品
// @Tags         购物车模块
// @Produce      json
// @Security     BearerAuth
// @Param        itemId path string true "菜品ID"
// @Success      200 {object} response.Response{data=appcart.CartDTO}
// @Router       /cart/remove/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	result, err := h.cartUseCase.Remove(c.Request.Context(), middleware.MustGetUserID(c), c.Param("itemId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ClearCart 清空购物车
// @Summary      清空购物车
// @Tags         购物车模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /cart/clear [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartUseCase.Clear(c.Request.Context(), middleware.MustGetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
