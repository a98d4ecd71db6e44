package dto

// RegisterWorkshopRequest 工作坊报名
// 必填项由应用层校验(去掉首尾空格后不能为空)
type RegisterWorkshopRequest struct {
	WorkshopID uint   `json:"workshopId" example:"3"`
	Name       string `json:"name" binding:"max=100" example:"Asha"`
	Phone      string `json:"phone" binding:"max=30" example:"9000000000"`
	Email      string `json:"email" binding:"omitempty,email,max=100" example:"asha@example.com"`
}

// SubmitEnquiryRequest 加盟咨询
type SubmitEnquiryRequest struct {
	FullName        string `json:"fullName" binding:"max=100" example:"Ravi Kumar"`
	Phone           string `json:"phone" binding:"max=30" example:"9876543210"`
	Email           string `json:"email" binding:"omitempty,email,max=100" example:"ravi@example.com"`
	City            string `json:"city" binding:"max=100" example:"Pune"`
	InvestmentRange string `json:"investmentRange" binding:"max=50" example:"20-30L"`
	Message         string `json:"message" binding:"max=2000"`
}

// SubmitEnquiryResponse 提交结果
type SubmitEnquiryResponse struct {
	Message string `json:"message" example:"We'll contact you soon."`
	ID      uint   `json:"id" example:"1"`
}

// UpdateEnquiryStatusRequest 管理端更新跟进状态
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required" example:"CONTACTED"`
}
