package menu

import (
	"context"
)

// Repository 菜单仓储接口
// 菜单由后台维护,本服务只读
type Repository interface {
	// FindByID 根据ID查找菜品,不存在返回ErrItemNotFound
	FindByID(ctx context.Context, id string) (*Item, error)

	// FindByIDs 批量查找,返回 ID→菜品,找不到的ID不出现在结果中
	// 购物车和下单都用它一次性关联菜品,避免N+1查询
	FindByIDs(ctx context.Context, ids []string) (map[string]*Item, error)

	// ListActive 上架菜品,按DisplayOrder升序;groupID为空表示全部分组
	ListActive(ctx context.Context, groupID string) ([]*Item, error)
}

// Cache 菜单缓存(Cache-Aside)
// Get方法未命中时返回nil, nil
type Cache interface {
	GetItem(ctx context.Context, id string) (*Item, error)
	SetItem(ctx context.Context, item *Item) error
	GetList(ctx context.Context, groupID string) ([]*Item, error)
	SetList(ctx context.Context, groupID string, items []*Item) error
}
