package cart

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/cart"
	"github.com/xiebiao/cafe/internal/domain/menu"
	"github.com/xiebiao/cafe/pkg/clock"
)

// UnknownItemName 菜品已下架或删除时的展示名
const UnknownItemName = "Unknown"

// CartUseCase 购物车用例
// 教学要点:购物车只保存菜品ID,每次返回前用一次批量查询关联菜单;
// 关联不到的条目显示为Unknown而不是直接消失,顾客能看到并自行移除
type CartUseCase struct {
	cartRepo cart.Repository
	menuRepo menu.Repository
	clock    clock.Clock
	logger   *zap.Logger
}

// NewCartUseCase 创建购物车用例
func NewCartUseCase(cartRepo cart.Repository, menuRepo menu.Repository, clk clock.Clock, logger *zap.Logger) *CartUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUseCase{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		clock:    clk,
		logger:   logger,
	}
}

// CartDTO 购物车响应
type CartDTO struct {
	Items      []CartItemDTO `json:"items"`
	TotalItems int           `json:"totalItems"`
}

// CartItemDTO 关联菜单后的购物车条目
type CartItemDTO struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Price      int64  `json:"price"`
	InStock    bool   `json:"inStock"`
	Quantity   int    `json:"quantity"`
}

// Get 查询购物车,没有购物车时返回空列表
func (uc *CartUseCase) Get(ctx context.Context, userID uint) (*CartDTO, error) {
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		c = cart.New(userID)
	} else if err != nil {
		return nil, err
	}
	return uc.render(ctx, c)
}

// Add 加入购物车
// quantity为0时按1处理;菜品必须存在
func (uc *CartUseCase) Add(ctx context.Context, userID uint, menuItemID string, quantity int) (*CartDTO, error) {
	if quantity == 0 {
		quantity = 1
	}
	if _, err := uc.menuRepo.FindByID(ctx, menuItemID); err != nil {
		return nil, err
	}

	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		c = cart.New(userID)
	} else if err != nil {
		return nil, err
	}

	if err := c.Add(menuItemID, quantity); err != nil {
		return nil, err
	}
	return uc.save(ctx, c)
}

// Update 修改数量,0表示移除
func (uc *CartUseCase) Update(ctx context.Context, userID uint, menuItemID string, quantity int) (*CartDTO, error) {
	if quantity < 0 {
		return nil, cart.ErrInvalidQuantity
	}
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := c.Update(menuItemID, quantity); err != nil {
		return nil, err
	}
	return uc.save(ctx, c)
}

// Remove 移除条目
func (uc *CartUseCase) Remove(ctx context.Context, userID uint, menuItemID string) (*CartDTO, error) {
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Remove(menuItemID)
	return uc.save(ctx, c)
}

// Clear 清空购物车
func (uc *CartUseCase) Clear(ctx context.Context, userID uint) error {
	return uc.cartRepo.ClearByUserID(ctx, userID)
}

func (uc *CartUseCase) save(ctx context.Context, c *cart.Cart) (*CartDTO, error) {
	c.UpdatedAt = uc.clock.Now()
	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return uc.render(ctx, c)
}

// render 一次批量查询关联菜单
func (uc *CartUseCase) render(ctx context.Context, c *cart.Cart) (*CartDTO, error) {
	dto := &CartDTO{Items: make([]CartItemDTO, 0, len(c.Items))}
	if len(c.Items) == 0 {
		return dto, nil
	}

	menuItems, err := uc.menuRepo.FindByIDs(ctx, c.MenuItemIDs())
	if err != nil {
		return nil, err
	}

	for _, it := range c.Items {
		line := CartItemDTO{MenuItemID: it.MenuItemID, Name: UnknownItemName, Quantity: it.Quantity}
		if m, ok := menuItems[it.MenuItemID]; ok {
			line.Name = m.Name
			line.ImageURL = m.ImageURL
			line.Price = m.BasePrice()
			line.InStock = m.HasStock()
		} else {
			uc.logger.Debug("cart references unknown menu item",
				zap.Uint("user_id", c.UserID),
				zap.String("menu_item_id", it.MenuItemID),
			)
		}
		dto.Items = append(dto.Items, line)
		dto.TotalItems += it.Quantity
	}
	return dto, nil
}
