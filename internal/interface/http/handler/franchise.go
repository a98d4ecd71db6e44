package handler

import (
	"github.com/gin-gonic/gin"

	appfranchise "github.com/xiebiao/cafe/internal/application/franchise"
	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/pkg/response"
)

// FranchiseHandler 加盟咨询HTTP处理器
type FranchiseHandler struct {
	enquiryUseCase *appfranchise.EnquiryUseCase
}

// NewFranchiseHandler 创建加盟咨询处理器
func NewFranchiseHandler(enquiryUseCase *appfranchise.EnquiryUseCase) *FranchiseHandler {
	return &FranchiseHandler{enquiryUseCase: enquiryUseCase}
}

// SubmitEnquiry 提交加盟咨询
// @Summary      提交加盟咨询
// @Tags         加盟模块
// @Accept       json
// @Produce      json
// @Param        request body dto.SubmitEnquiryRequest true "咨询信息"
// @Success      201 {object} response.Response{data=dto.SubmitEnquiryResponse}
// @Failure      400 {object} response.Response "姓名、电话、城市必填"
// @Router       /franchise/enquiries [post]
func (h *FranchiseHandler) SubmitEnquiry(c *gin.Context) {
	var req dto.SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.enquiryUseCase.Submit(c.Request.Context(), appfranchise.SubmitRequest{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		City:            req.City,
		InvestmentRange: req.InvestmentRange,
		Message:         req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, &dto.SubmitEnquiryResponse{
		Message: appfranchise.SubmittedMessage,
		ID:      result.ID,
	})
}

// ListEnquiries 咨询列表(管理员)
// @Summary      咨询列表
// @Description  按提交时间倒序分页
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码,默认1"
// @Param        pageSize query int false "每页条数,默认20,最大100"
// @Success      200 {object} response.Response{data=response.PageData{list=[]appfranchise.EnquiryDTO}}
// @Router       /admin/franchise/enquiries [get]
func (h *FranchiseHandler) ListEnquiries(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	q.Normalize()

	list, total, err := h.enquiryUseCase.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, list, total, q.Page, q.PageSize)
}

// UpdateStatus 更新跟进状态(管理员)
// @Summary      更新跟进状态
// @Tags         店员端
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "咨询ID"
// @Param        request body dto.UpdateEnquiryStatusRequest true "NEW或CONTACTED"
// @Success      200 {object} response.Response{data=appfranchise.EnquiryDTO}
// @Failure      400 {object} response.Response "状态非法"
// @Failure      404 {object} response.Response "咨询不存在"
// @Router       /admin/franchise/enquiries/{id}/status [patch]
func (h *FranchiseHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.enquiryUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
