package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/cafe/internal/domain/menu"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// MenuCache 菜单缓存(Cache-Aside)
// Key设计:
//   - menu:item:{id}        单个菜品
//   - menu:list:{group|all} 上架列表
//
// 菜单由后台维护,这里只靠TTL过期,不做主动失效
type MenuCache struct {
	client  *redis.Client
	itemTTL time.Duration
	listTTL time.Duration
}

// NewMenuCache 创建菜单缓存
func NewMenuCache(client *redis.Client, itemTTL, listTTL time.Duration) *MenuCache {
	return &MenuCache{client: client, itemTTL: itemTTL, listTTL: listTTL}
}

var _ menu.Cache = (*MenuCache)(nil)

func itemKey(id string) string {
	return fmt.Sprintf("menu:item:%s", id)
}

func listKey(groupID string) string {
	if groupID == "" {
		groupID = "all"
	}
	return fmt.Sprintf("menu:list:%s", groupID)
}

// GetItem 未命中返回nil, nil
func (c *MenuCache) GetItem(ctx context.Context, id string) (*menu.Item, error) {
	var item menu.Item
	ok, err := c.get(ctx, itemKey(id), &item)
	if err != nil || !ok {
		return nil, err
	}
	return &item, nil
}

func (c *MenuCache) SetItem(ctx context.Context, item *menu.Item) error {
	return c.set(ctx, itemKey(item.ID), item, c.itemTTL)
}

// GetList 未命中返回nil, nil;命中空列表返回非nil空切片
func (c *MenuCache) GetList(ctx context.Context, groupID string) ([]*menu.Item, error) {
	var items []*menu.Item
	ok, err := c.get(ctx, listKey(groupID), &items)
	if err != nil || !ok {
		return nil, err
	}
	if items == nil {
		items = []*menu.Item{}
	}
	return items, nil
}

func (c *MenuCache) SetList(ctx context.Context, groupID string, items []*menu.Item) error {
	return c.set(ctx, listKey(groupID), items, c.listTTL)
}

func (c *MenuCache) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(err, "读取菜单缓存失败")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, apperrors.Wrap(err, "菜单缓存数据损坏")
	}
	return true, nil
}

func (c *MenuCache) set(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.Wrap(err, "序列化菜单失败")
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入菜单缓存失败")
	}
	return nil
}
