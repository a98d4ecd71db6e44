package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/cafe/internal/domain/menu"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// menuRepository 菜单仓储实现(MySQL,只读)
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository 创建菜单仓储
func NewMenuRepository(db *gorm.DB) menu.Repository {
	return &menuRepository{db: db}
}

// pricesInOrder 规格按Position排序预加载
func pricesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID 根据ID查找菜品
func (r *menuRepository) FindByID(ctx context.Context, id string) (*menu.Item, error) {
	var model MenuItemModel
	err := getDB(ctx, r.db).Preload("Prices", pricesInOrder).Where("id = ?", id).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, menu.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询菜品失败")
	}
	return toMenuEntity(&model), nil
}

// FindByIDs 批量查找
// SELECT * FROM menu_items WHERE id IN (?)
// SELECT * FROM menu_prices WHERE menu_item_id IN (?) ORDER BY position
func (r *menuRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*menu.Item, error) {
	out := make(map[string]*menu.Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var models []MenuItemModel
	err := getDB(ctx, r.db).Preload("Prices", pricesInOrder).Where("id IN ?", uniqueStrings(ids)).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "批量查询菜品失败")
	}

	for i := range models {
		out[models[i].ID] = toMenuEntity(&models[i])
	}
	return out, nil
}

// ListActive 上架菜品,按展示顺序
func (r *menuRepository) ListActive(ctx context.Context, groupID string) ([]*menu.Item, error) {
	query := getDB(ctx, r.db).Where("is_active = ?", true)
	if groupID != "" {
		query = query.Where("group_id = ?", groupID)
	}

	var models []MenuItemModel
	if err := query.Preload("Prices", pricesInOrder).Order("display_order ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询菜单失败")
	}

	items := make([]*menu.Item, len(models))
	for i := range models {
		items[i] = toMenuEntity(&models[i])
	}
	return items, nil
}

// toMenuEntity GORM模型 → 领域实体
func toMenuEntity(m *MenuItemModel) *menu.Item {
	prices := make([]menu.Price, len(m.Prices))
	for i, p := range m.Prices {
		prices[i] = menu.Price{
			Size:            p.Size,
			Price:           p.Price,
			DiscountPercent: p.DiscountPercent,
			InStock:         p.InStock,
		}
	}
	return &menu.Item{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		ImageURL:     m.ImageURL,
		GroupID:      m.GroupID,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		Prices:       prices,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// toMenuModel 领域实体 → GORM模型(种子数据和测试使用)
func toMenuModel(i *menu.Item) *MenuItemModel {
	prices := make([]MenuPriceModel, len(i.Prices))
	for k, p := range i.Prices {
		prices[k] = MenuPriceModel{
			MenuItemID:      i.ID,
			Position:        k,
			Size:            p.Size,
			Price:           p.Price,
			DiscountPercent: p.DiscountPercent,
			InStock:         p.InStock,
		}
	}
	return &MenuItemModel{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		ImageURL:     i.ImageURL,
		GroupID:      i.GroupID,
		DisplayOrder: i.DisplayOrder,
		IsActive:     i.IsActive,
		Prices:       prices,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
