package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/cafe/internal/domain/cart"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 教学要点:条目整体覆盖保存(先删后插),比逐条diff简单,购物车条目很少
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindByUserID 查询用户购物车
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	var model CartModel
	err := getDB(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}
	return toCartEntity(&model), nil
}

// Save 保存购物车(不存在则创建),整体覆盖条目
func (r *cartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		model := CartModel{UserID: c.UserID}
		if err := tx.Where("user_id = ?", c.UserID).
			Attrs(CartModel{CreatedAt: c.UpdatedAt}).
			FirstOrCreate(&model).Error; err != nil {
			return apperrors.Wrap(err, "保存购物车失败")
		}

		if err := tx.Model(&model).Update("updated_at", c.UpdatedAt).Error; err != nil {
			return apperrors.Wrap(err, "保存购物车失败")
		}

		if err := replaceCartItems(tx, model.ID, c.Items); err != nil {
			return err
		}

		c.ID = model.ID
		return nil
	})
}

// ClearByUserID 清空用户购物车,购物车不存在时不报错
func (r *cartRepository) ClearByUserID(ctx context.Context, userID uint) error {
	db := getDB(ctx, r.db)
	sub := db.Model(&CartModel{}).Select("id").Where("user_id = ?", userID)
	if err := db.Where("cart_id IN (?)", sub).Delete(&CartItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

func replaceCartItems(tx *gorm.DB, cartID uint, items []cart.Item) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&CartItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "保存购物车失败")
	}
	if len(items) == 0 {
		return nil
	}

	rows := make([]CartItemModel, len(items))
	for i, it := range items {
		rows[i] = CartItemModel{CartID: cartID, Position: i, MenuItemID: it.MenuItemID, Quantity: it.Quantity}
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperrors.Wrap(err, "保存购物车失败")
	}
	return nil
}

// toCartEntity GORM模型 → 领域实体
func toCartEntity(m *CartModel) *cart.Cart {
	items := make([]cart.Item, len(m.Items))
	for i, it := range m.Items {
		items[i] = cart.Item{MenuItemID: it.MenuItemID, Quantity: it.Quantity}
	}
	return &cart.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		Items:     items,
		UpdatedAt: m.UpdatedAt,
	}
}
