package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/cafe/internal/application/recommend"
	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/pkg/response"
)

// RecommendHandler 推荐HTTP处理器
type RecommendHandler struct {
	recommendUseCase *recommend.RecommendUseCase
}

// NewRecommendHandler 创建推荐处理器
func NewRecommendHandler(recommendUseCase *recommend.RecommendUseCase) *RecommendHandler {
	return &RecommendHandler{recommendUseCase: recommendUseCase}
}

// SuggestCoffee 咖啡推荐
// @Summary      咖啡推荐
// @Description  按心情、时段和是否加奶给出浓度和风味标签,未知心情按calm处理;
// @Description  matches是浓度相同或任一标签相同的咖啡,最多3个
// @Tags         推荐模块
// @Accept       json
// @Produce      json
// @Param        request body dto.CoffeeSuggestionRequest true "心情和时段"
// @Success      200 {object} response.Response{data=recommend.CoffeeSuggestion}
// @Router       /ai/coffee [post]
func (h *RecommendHandler) SuggestCoffee(c *gin.Context) {
	var req dto.CoffeeSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	result, err := h.recommendUseCase.SuggestCoffee(c.Request.Context(), req.Mood, req.TimeOfDay, req.PrefersMilk)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SuggestArt 艺术主题推荐
// @Summary      艺术主题推荐
// @Description  matches是带有该心情标签的作品,最多3个
// @Tags         推荐模块
// @Accept       json
// @Produce      json
// @Param        request body dto.ArtSuggestionRequest true "心情"
// @Success      200 {object} response.Response{data=recommend.ArtSuggestion}
// @Router       /ai/art [post]
func (h *RecommendHandler) SuggestArt(c *gin.Context) {
	var req dto.ArtSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	result, err := h.recommendUseCase.SuggestArt(c.Request.Context(), req.Mood)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SuggestWorkshop 工作坊推荐
// @Summary      工作坊推荐
// @Tags         推荐模块
// @Accept       json
// @Produce      json
// @Param        request body dto.WorkshopSuggestionRequest true "氛围和时段"
// @Success      200 {object} response.Response{data=recommend.WorkshopSuggestion}
// @Router       /ai/workshop [post]
func (h *RecommendHandler) SuggestWorkshop(c *gin.Context) {
	var req dto.WorkshopSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	response.Success(c, h.recommendUseCase.SuggestWorkshop(req.Vibe, req.TimeOfDay))
}
