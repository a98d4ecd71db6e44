package handler

import (
	"github.com/gin-gonic/gin"

	appworkshop "github.com/xiebiao/cafe/internal/application/workshop"
	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/pkg/response"
)

// WorkshopHandler 工作坊HTTP处理器
type WorkshopHandler struct {
	workshopUseCase *appworkshop.WorkshopUseCase
}

// NewWorkshopHandler 创建工作坊处理器
func NewWorkshopHandler(workshopUseCase *appworkshop.WorkshopUseCase) *WorkshopHandler {
	return &WorkshopHandler{workshopUseCase: workshopUseCase}
}

// ListWorkshops 工作坊列表
// @Summary      工作坊列表
// @Tags         工作坊模块
// @Produce      json
// @Success      200 {object} response.Response{data=[]appworkshop.WorkshopDTO}
// @Router       /workshops [get]
func (h *WorkshopHandler) ListWorkshops(c *gin.Context) {
	result, err := h.workshopUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Register 报名
// @Summary      工作坊报名
// @Description  名额通过SELECT ... FOR UPDATE锁定,不会超员
// @Tags         工作坊模块
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterWorkshopRequest true "报名信息"
// @Success      201 {object} response.Response{data=appworkshop.RegistrationDTO}
// @Failure      400 {object} response.Response "缺少必填项或名额已满"
// @Failure      404 {object} response.Response "工作坊不存在"
// @Router       /workshops/register [post]
func (h *WorkshopHandler) Register(c *gin.Context) {
	var req dto.RegisterWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.workshopUseCase.Register(c.Request.Context(), appworkshop.RegisterRequest{
		WorkshopID: req.WorkshopID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListRegistrations 报名记录(管理员)
// @Summary      报名记录
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]appworkshop.RegistrationDTO}
// @Router       /admin/workshops/registrations [get]
func (h *WorkshopHandler) ListRegistrations(c *gin.Context) {
	result, err := h.workshopUseCase.ListRegistrations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
