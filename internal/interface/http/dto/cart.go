package dto

// AddToCartRequest 加入购物车
// quantity不传时按1处理
type AddToCartRequest struct {
	ItemID   string `json:"itemId" binding:"required,max=64" example:"itm_robusta_iced_americano"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1,max=99" example:"1"`
}

// UpdateCartRequest 修改数量,0表示移除
// quantity用指针区分"没传"和"传了0"
type UpdateCartRequest struct {
	ItemID   string `json:"itemId" binding:"required,max=64" example:"itm_robusta_iced_americano"`
	Quantity *int   `json:"quantity" binding:"required" example:"3"`
}
