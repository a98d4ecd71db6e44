package menu

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/menu"
	"github.com/xiebiao/cafe/pkg/metrics"
)

// MenuUseCase 菜单查询(Cache-Aside)
// 教学要点:
// 1. 先读Redis,未命中再读MySQL并回填
// 2. Redis出错只记日志,降级读MySQL,缓存不可用不影响点单
type MenuUseCase struct {
	repo   menu.Repository
	cache  menu.Cache
	logger *zap.Logger
}

// NewMenuUseCase 创建菜单用例
func NewMenuUseCase(repo menu.Repository, cache menu.Cache, logger *zap.Logger) *MenuUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuUseCase{repo: repo, cache: cache, logger: logger}
}

// PriceDTO 规格价格
type PriceDTO struct {
	Size            string `json:"size"`
	Price           int64  `json:"price"`
	DiscountPercent int    `json:"discountPercent"`
	InStock         bool   `json:"inStock"`
}

// ItemDTO 菜品响应
type ItemDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	ImageURL     string     `json:"imageUrl"`
	GroupID      string     `json:"groupId,omitempty"`
	DisplayOrder int        `json:"displayOrder"`
	InStock      bool       `json:"inStock"`
	Prices       []PriceDTO `json:"prices"`
}

// List 上架菜品,groupID为空返回全部
func (uc *MenuUseCase) List(ctx context.Context, groupID string) ([]*ItemDTO, error) {
	items, err := uc.cache.GetList(ctx, groupID)
	switch {
	case err != nil:
		uc.cacheError("get list", err)
	case items != nil:
		metrics.IncCounterVec(metrics.MenuCacheRequests, metrics.ResultHit)
		return toDTOs(items), nil
	default:
		metrics.IncCounterVec(metrics.MenuCacheRequests, metrics.ResultMiss)
	}

	items, err = uc.repo.ListActive(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetList(ctx, groupID, items); err != nil {
		uc.cacheError("set list", err)
	}
	return toDTOs(items), nil
}

// Get 菜品详情
func (uc *MenuUseCase) Get(ctx context.Context, id string) (*ItemDTO, error) {
	item, err := uc.cache.GetItem(ctx, id)
	switch {
	case err != nil:
		uc.cacheError("get item", err)
	case item != nil:
		metrics.IncCounterVec(metrics.MenuCacheRequests, metrics.ResultHit)
		return toDTO(item), nil
	default:
		metrics.IncCounterVec(metrics.MenuCacheRequests, metrics.ResultMiss)
	}

	item, err = uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetItem(ctx, item); err != nil {
		uc.cacheError("set item", err)
	}
	return toDTO(item), nil
}

func (uc *MenuUseCase) cacheError(op string, err error) {
	metrics.IncCounterVec(metrics.MenuCacheRequests, metrics.ResultError)
	uc.logger.Warn("menu cache unavailable", zap.String("op", op), zap.Error(err))
}

func toDTO(i *menu.Item) *ItemDTO {
	prices := make([]PriceDTO, len(i.Prices))
	for k, p := range i.Prices {
		prices[k] = PriceDTO{Size: p.Size, Price: p.Price, DiscountPercent: p.DiscountPercent, InStock: p.InStock}
	}
	return &ItemDTO{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		ImageURL:     i.ImageURL,
		GroupID:      i.GroupID,
		DisplayOrder: i.DisplayOrder,
		InStock:      i.HasStock(),
		Prices:       prices,
	}
}

func toDTOs(items []*menu.Item) []*ItemDTO {
	out := make([]*ItemDTO, len(items))
	for k, i := range items {
		out[k] = toDTO(i)
	}
	return out
}
