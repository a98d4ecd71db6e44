package handler

import (
	"github.com/gin-gonic/gin"

	appmenu "github.com/xiebiao/cafe/internal/application/menu"
	"github.com/xiebiao/cafe/pkg/response"
)

// MenuHandler 菜单HTTP处理器(公开接口)
type MenuHandler struct {
	menuUseCase *appmenu.MenuUseCase
}

// NewMenuHandler 创建菜单处理器
func NewMenuHandler(menuUseCase *appmenu.MenuUseCase) *MenuHandler {
	return &MenuHandler{menuUseCase: menuUseCase}
}

// ListMenu 菜单列表
// @Summary      菜单列表
// @Description  上架菜品按展示顺序返回,可按分组筛选
// @Tags         菜单模块
// @Produce      json
// @Param        group query string false "分组ID"
// @Success      200 {object} response.Response{data=[]appmenu.ItemDTO}
// @Router       /menu [get]
func (h *MenuHandler) ListMenu(c *gin.Context) {
	items, err := h.menuUseCase.List(c.Request.Context(), c.Query("group"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// GetItem 菜品详情
// @Summary      菜品详情
// @Tags         菜单模块
// @Produce      json
// @Param        id path string true "菜品ID"
// @Success      200 {object} response.Response{data=appmenu.ItemDTO}
// @Failure      404 {object} response.Response "菜品不存在"
// @Router       /menu/items/{id} [get]
func (h *MenuHandler) GetItem(c *gin.Context) {
	item, err := h.menuUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}
