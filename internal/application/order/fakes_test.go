package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiebiao/cafe/internal/domain/cart"
	"github.com/xiebiao/cafe/internal/domain/menu"
	"github.com/xiebiao/cafe/internal/domain/order"
)

// fakeOrderRepo 内存订单仓储
type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    map[uint]*order.Order
	nextID    uint
	countFn   func(from, to time.Time) (int64, error)
	existsFn  func(token string) (bool, error)
	createErr error

	existsCalls []string
	lockCalls   int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*order.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	o.ID = r.nextID
	r.nextID++
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) LockByID(ctx context.Context, id uint) (*order.Order, error) {
	r.lockCalls++
	return r.FindByID(ctx, id)
}

func (r *fakeOrderRepo) List(_ context.Context, filter order.ListFilter) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*order.Order
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		cp := *o
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return order.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) ExistsByToken(_ context.Context, token string) (bool, error) {
	r.existsCalls = append(r.existsCalls, token)
	if r.existsFn != nil {
		return r.existsFn(token)
	}
	return false, nil
}

func (r *fakeOrderRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	if r.countFn != nil {
		return r.countFn(from, to)
	}
	return int64(len(r.orders)), nil
}

// fakeMenuRepo 内存菜单
type fakeMenuRepo struct {
	items      map[string]*menu.Item
	batchCalls int
}

func newFakeMenuRepo(items ...*menu.Item) *fakeMenuRepo {
	m := &fakeMenuRepo{items: map[string]*menu.Item{}}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *fakeMenuRepo) FindByID(_ context.Context, id string) (*menu.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, menu.ErrItemNotFound
	}
	return it, nil
}

func (m *fakeMenuRepo) FindByIDs(_ context.Context, ids []string) (map[string]*menu.Item, error) {
	m.batchCalls++
	out := make(map[string]*menu.Item, len(ids))
	for _, id := range ids {
		if it, ok := m.items[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}

func (m *fakeMenuRepo) ListActive(context.Context, string) ([]*menu.Item, error) {
	return nil, nil
}

// fakeCartRepo 只记录清空调用
type fakeCartRepo struct {
	cleared  []uint
	clearErr error
}

func (c *fakeCartRepo) FindByUserID(context.Context, uint) (*cart.Cart, error) {
	return nil, cart.ErrCartNotFound
}

func (c *fakeCartRepo) Save(context.Context, *cart.Cart) error { return nil }

func (c *fakeCartRepo) ClearByUserID(_ context.Context, userID uint) error {
	if c.clearErr != nil {
		return c.clearErr
	}
	c.cleared = append(c.cleared, userID)
	return nil
}

// fakeTx 直接执行fn,记录事务次数
type fakeTx struct {
	calls int
}

func (t *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type publishedMsg struct {
	routingKey string
	message    interface{}
}

type fakePublisher struct {
	sent []publishedMsg
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, publishedMsg{routingKey: routingKey, message: message})
	return nil
}

// scriptedRand 按顺序返回预设值
type scriptedRand struct {
	values []int
	pos    int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func latte() *menu.Item {
	return &menu.Item{
		ID:       "itm_latte",
		Name:     "Latte",
		IsActive: true,
		Prices:   []menu.Price{{Size: "M", Price: 2500, InStock: true}, {Size: "L", Price: 3000, InStock: true}},
	}
}

func americano() *menu.Item {
	return &menu.Item{
		ID:       "itm_robusta_iced_americano",
		Name:     "Robusta Iced Americano",
		IsActive: true,
		Prices:   []menu.Price{{Size: "M", Price: 1800, InStock: true}},
	}
}
