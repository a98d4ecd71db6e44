package cart

import (
	"time"
)

// MaxQuantity 单个条目的数量上限,和下单接口的限制一致
const MaxQuantity = 99

// Item 购物车条目,只保存菜品ID引用
type Item struct {
	MenuItemID string
	Quantity   int
}

// Cart 用户购物车(每个用户一个)
type Cart struct {
	ID        uint
	UserID    uint
	Items     []Item
	UpdatedAt time.Time
}

// New 创建空购物车
func New(userID uint) *Cart {
	return &Cart{UserID: userID, Items: []Item{}}
}

// Add 加入购物车,已存在则累加数量
// 累加后超过MaxQuantity返回ErrInvalidQuantity,原数量不变
func (c *Cart) Add(menuItemID string, quantity int) error {
	if quantity <= 0 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			if c.Items[i].Quantity+quantity > MaxQuantity {
				return ErrInvalidQuantity
			}
			c.Items[i].Quantity += quantity
			return nil
		}
	}
	c.Items = append(c.Items, Item{MenuItemID: menuItemID, Quantity: quantity})
	return nil
}

// Update 修改数量,0表示移除
func (c *Cart) Update(menuItemID string, quantity int) error {
	if quantity < 0 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	idx := c.indexOf(menuItemID)
	if idx < 0 {
		return ErrItemNotInCart
	}
	if quantity == 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		return nil
	}
	c.Items[idx].Quantity = quantity
	return nil
}

// Remove 移除条目,不存在时忽略
func (c *Cart) Remove(menuItemID string) {
	if idx := c.indexOf(menuItemID); idx >= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}
}

// Clear 清空
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// MenuItemIDs 所有条目引用的菜品ID
func (c *Cart) MenuItemIDs() []string {
	ids := make([]string, len(c.Items))
	for i, it := range c.Items {
		ids[i] = it.MenuItemID
	}
	return ids
}

func (c *Cart) indexOf(menuItemID string) int {
	for i, it := range c.Items {
		if it.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}
