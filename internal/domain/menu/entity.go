package menu

import (
	"time"
)

// Price 规格价格
// DiscountPercent为0表示无折扣
type Price struct {
	Size            string
	Price           int64 // 分
	DiscountPercent int
	InStock         bool
}

// Item 菜品实体
// DDD设计说明:
// 1. ID是字符串业务编码(如itm_robusta_iced_americano),购物车和订单只保存ID
// 2. 同一菜品可以有多个规格(Prices),下单时取第一个规格的价格
type Item struct {
	ID           string
	Name         string
	Category     string
	ImageURL     string
	GroupID      string
	DisplayOrder int
	IsActive     bool
	Prices       []Price
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasStock 任一规格有货即为有货
func (i *Item) HasStock() bool {
	for _, p := range i.Prices {
		if p.InStock {
			return true
		}
	}
	return false
}

// BasePrice 第一个规格的价格,没有规格时为0
func (i *Item) BasePrice() int64 {
	if len(i.Prices) == 0 {
		return 0
	}
	return i.Prices[0].Price
}
