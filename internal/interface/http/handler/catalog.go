package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/cafe/internal/application/catalog"
	"github.com/xiebiao/cafe/internal/application/insights"
	"github.com/xiebiao/cafe/pkg/response"
)

// CatalogHandler 咖啡、艺术品目录和热门榜
type CatalogHandler struct {
	catalogUseCase  *catalog.CatalogUseCase
	insightsUseCase *insights.InsightsUseCase
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(catalogUseCase *catalog.CatalogUseCase, insightsUseCase *insights.InsightsUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUseCase: catalogUseCase, insightsUseCase: insightsUseCase}
}

// ListCoffees 咖啡目录
// @Summary      咖啡目录
// @Description  招牌款在前,同组内新品在前
// @Tags         目录模块
// @Produce      json
// @Success      200 {object} response.Response{data=[]catalog.CoffeeDTO}
// @Router       /coffees [get]
func (h *CatalogHandler) ListCoffees(c *gin.Context) {
	result, err := h.catalogUseCase.ListCoffees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListArt 艺术品目录
// @Summary      艺术品目录
// @Description  按状态排序:available、reserved、sold
// @Tags         目录模块
// @Produce      json
// @Success      200 {object} response.Response{data=[]catalog.ArtDTO}
// @Router       /art [get]
func (h *CatalogHandler) ListArt(c *gin.Context) {
	result, err := h.catalogUseCase.ListArt(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Popular 热门榜
// @Summary      热门榜
// @Description  招牌咖啡、浓烈风味、高价艺术品、报名最多的工作坊,各取前3
// @Tags         目录模块
// @Produce      json
// @Success      200 {object} response.Response{data=insights.PopularDTO}
// @Router       /insights/popular [get]
func (h *CatalogHandler) Popular(c *gin.Context) {
	result, err := h.insightsUseCase.Popular(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
