package handler

import (
	"github.com/gin-gonic/gin"

	appart "github.com/xiebiao/cafe/internal/application/art"
	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/pkg/response"
)

// ArtBookingHandler 艺术品预订HTTP处理器
type ArtBookingHandler struct {
	bookingUseCase *appart.BookingUseCase
}

// NewArtBookingHandler 创建预订处理器
func NewArtBookingHandler(bookingUseCase *appart.BookingUseCase) *ArtBookingHandler {
	return &ArtBookingHandler{bookingUseCase: bookingUseCase}
}

// CreateBooking 提交预订申请
// @Summary      艺术品预订申请
// @Description  作品必须存在且未售出,申请不改变作品状态
// @Tags         目录模块
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateArtBookingRequest true "预订信息"
// @Success      201 {object} response.Response{data=appart.BookingDTO}
// @Failure      400 {object} response.Response "缺少必填项或作品已售出"
// @Failure      404 {object} response.Response "作品不存在"
// @Router       /art/book [post]
func (h *ArtBookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateArtBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.bookingUseCase.Create(c.Request.Context(), appart.CreateBookingRequest{
		ArtID:    req.ArtID,
		UserName: req.UserName,
		Phone:    req.Phone,
		Email:    req.Email,
		Message:  req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListBookings 预订申请列表(管理员)
// @Summary      预订申请列表
// @Description  按申请时间倒序分页
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码,默认1"
// @Param        pageSize query int false "每页条数,默认20,最大100"
// @Success      200 {object} response.Response{data=response.PageData{list=[]appart.BookingDTO}}
// @Router       /admin/art/bookings [get]
func (h *ArtBookingHandler) ListBookings(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	q.Normalize()

	list, total, err := h.bookingUseCase.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, list, total, q.Page, q.PageSize)
}

// AcceptBooking 接受预订(管理员)
// @Summary      接受预订
// @Description  作品标记为reserved;已售出的作品不能接受
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "申请ID"
// @Success      200 {object} response.Response{data=appart.BookingDTO}
// @Failure      400 {object} response.Response "作品已售出"
// @Failure      404 {object} response.Response "申请或作品不存在"
// @Router       /admin/art/bookings/{id}/accept [patch]
func (h *ArtBookingHandler) AcceptBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.bookingUseCase.Accept(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RejectBooking 拒绝预订(管理员)
// @Summary      拒绝预订
// @Description  没有其他已接受的申请时作品恢复为available
// @Tags         店员端
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "申请ID"
// @Success      200 {object} response.Response{data=appart.BookingDTO}
// @Failure      404 {object} response.Response "申请不存在"
// @Router       /admin/art/bookings/{id}/reject [patch]
func (h *ArtBookingHandler) RejectBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.bookingUseCase.Reject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
