package dto

// 分页默认值
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery 管理端列表的分页参数,page从1开始
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100" example:"20"`
}

// Normalize 填充默认值
func (q *PageQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
}
