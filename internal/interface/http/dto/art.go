package dto

// CreateArtBookingRequest 艺术品预订申请
// 姓名和电话由应用层校验(去掉首尾空格后不能为空)
type CreateArtBookingRequest struct {
	ArtID    uint   `json:"artId" example:"5"`
	UserName string `json:"userName" binding:"max=100" example:"Meera"`
	Phone    string `json:"phone" binding:"max=30" example:"9000000000"`
	Email    string `json:"email" binding:"omitempty,email,max=100" example:"meera@example.com"`
	Message  string `json:"message" binding:"max=2000" example:"Can I pick it up this weekend?"`
}
