package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/cafe/internal/domain/menu"
)

type fakeRepo struct {
	items     map[string]*menu.Item
	list      []*menu.Item
	findCalls int
	listCalls int
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*menu.Item, error) {
	r.findCalls++
	if it, ok := r.items[id]; ok {
		return it, nil
	}
	return nil, menu.ErrItemNotFound
}

func (r *fakeRepo) FindByIDs(context.Context, []string) (map[string]*menu.Item, error) {
	return nil, nil
}

func (r *fakeRepo) ListActive(context.Context, string) ([]*menu.Item, error) {
	r.listCalls++
	return r.list, nil
}

type fakeCache struct {
	items map[string]*menu.Item
	lists map[string][]*menu.Item
	err   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]*menu.Item{}, lists: map[string][]*menu.Item{}}
}

func (c *fakeCache) GetItem(_ context.Context, id string) (*menu.Item, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.items[id], nil
}

func (c *fakeCache) SetItem(_ context.Context, item *menu.Item) error {
	if c.err != nil {
		return c.err
	}
	c.items[item.ID] = item
	return nil
}

func (c *fakeCache) GetList(_ context.Context, groupID string) ([]*menu.Item, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.lists[groupID], nil
}

func (c *fakeCache) SetList(_ context.Context, groupID string, items []*menu.Item) error {
	if c.err != nil {
		return c.err
	}
	c.lists[groupID] = items
	return nil
}

func latte() *menu.Item {
	return &menu.Item{ID: "itm_latte", Name: "Latte", Category: "coffee", Prices: []menu.Price{{Size: "M", Price: 2500, InStock: true}}}
}

func TestMenu_Get(t *testing.T) {
	t.Run("未命中读库并回填,第二次命中缓存", func(t *testing.T) {
		repo := &fakeRepo{items: map[string]*menu.Item{"itm_latte": latte()}}
		cache := newFakeCache()
		uc := NewMenuUseCase(repo, cache, nil)

		first, err := uc.Get(context.Background(), "itm_latte")
		require.NoError(t, err)
		second, err := uc.Get(context.Background(), "itm_latte")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, repo.findCalls)
		assert.True(t, first.InStock)
		assert.Contains(t, cache.items, "itm_latte")
	})

	t.Run("菜品不存在", func(t *testing.T) {
		uc := NewMenuUseCase(&fakeRepo{items: map[string]*menu.Item{}}, newFakeCache(), nil)
		_, err := uc.Get(context.Background(), "itm_gone")
		assert.ErrorIs(t, err, menu.ErrItemNotFound)
	})

	t.Run("缓存故障降级读库", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		repo := &fakeRepo{items: map[string]*menu.Item{"itm_latte": latte()}}
		cache := newFakeCache()
		cache.err = errors.New("redis: connection refused")
		uc := NewMenuUseCase(repo, cache, zap.New(core))

		dto, err := uc.Get(context.Background(), "itm_latte")
		require.NoError(t, err)
		assert.Equal(t, "Latte", dto.Name)
		assert.Equal(t, 2, logs.FilterMessage("menu cache unavailable").Len())
	})
}

func TestMenu_List(t *testing.T) {
	repo := &fakeRepo{list: []*menu.Item{latte()}}
	cache := newFakeCache()
	uc := NewMenuUseCase(repo, cache, nil)

	for i := 0; i < 3; i++ {
		list, err := uc.List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "itm_latte", list[0].ID)
	}
	assert.Equal(t, 1, repo.listCalls)
}
