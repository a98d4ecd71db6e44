package integration

import (
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderIDPattern    = regexp.MustCompile(`^ORD-\d{8}-\d{3,}$`)
	orderTokenPattern = regexp.MustCompile(`^(RB|CAF|BRU|ESP|LAT|MOC|VOL)-\d{4}$`)
)

type menuItem struct {
	ID      string `json:"id"`
	InStock bool   `json:"inStock"`
}

type orderData struct {
	ID            uint   `json:"id"`
	OrderID       string `json:"orderId"`
	OrderToken    string `json:"orderToken"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	TotalAmount   int64  `json:"totalAmount"`
}

type cartData struct {
	TotalItems int `json:"totalItems"`
}

// firstMenuItem 取第一个有货的菜品,菜单为空时跳过
func firstMenuItem(t *testing.T, env *Env) string {
	t.Helper()
	resp := env.Do(t, http.MethodGet, "/menu", nil, "")
	require.Equal(t, 0, resp.Code, resp.Message)

	var items []menuItem
	resp.Decode(t, &items)
	for _, it := range items {
		if it.InStock {
			return it.ID
		}
	}
	t.Skip("菜单中没有有货的菜品,跳过")
	return ""
}

func placeOrder(t *testing.T, env *Env, itemID, method string) orderData {
	t.Helper()
	resp := env.Do(t, http.MethodPost, "/orders", map[string]interface{}{
		"items":         []map[string]interface{}{{"menuItemId": itemID, "quantity": 2}},
		"paymentMethod": method,
		"pickupTime":    time.Now().Add(30 * time.Minute).UTC().Format(time.RFC3339),
	}, env.CustomerToken)
	require.Equal(t, http.StatusCreated, resp.Status, resp.Message)
	require.Equal(t, 0, resp.Code, resp.Message)

	var data orderData
	resp.Decode(t, &data)
	return data
}

// TestOrderFlow 购物车 → 下单 → 店员完成
func TestOrderFlow(t *testing.T) {
	env := Setup(t)
	itemID := firstMenuItem(t, env)

	t.Run("加入购物车", func(t *testing.T) {
		resp := env.Do(t, http.MethodPost, "/cart/add", map[string]interface{}{
			"itemId": itemID, "quantity": 2,
		}, env.CustomerToken)
		require.Equal(t, 0, resp.Code, resp.Message)

		var cart cartData
		resp.Decode(t, &cart)
		assert.GreaterOrEqual(t, cart.TotalItems, 2)
	})

	var created orderData
	t.Run("下单返回订单号和取餐码", func(t *testing.T) {
		created = placeOrder(t, env, itemID, "PAY_AT_COUNTER")

		assert.Regexp(t, orderIDPattern, created.OrderID)
		assert.Regexp(t, orderTokenPattern, created.OrderToken)
		assert.Equal(t, "PENDING", created.Status)
		assert.Positive(t, created.TotalAmount)
	})

	t.Run("下单后购物车清空", func(t *testing.T) {
		resp := env.Do(t, http.MethodGet, "/cart", nil, env.CustomerToken)
		if resp.Code != 0 {
			// 购物车不存在也算清空
			return
		}
		var cart cartData
		resp.Decode(t, &cart)
		assert.Zero(t, cart.TotalItems)
	})

	t.Run("顾客可以查询自己的订单", func(t *testing.T) {
		resp := env.Do(t, http.MethodGet, fmt.Sprintf("/orders/%d", created.ID), nil, env.CustomerToken)
		require.Equal(t, 0, resp.Code, resp.Message)

		var got orderData
		resp.Decode(t, &got)
		assert.Equal(t, created.OrderID, got.OrderID)
	})

	t.Run("顾客不能访问店员接口", func(t *testing.T) {
		resp := env.Do(t, http.MethodGet, "/admin/orders", nil, env.CustomerToken)
		assert.Equal(t, http.StatusForbidden, resp.Status)
	})

	t.Run("店员完成订单", func(t *testing.T) {
		resp := env.Do(t, http.MethodPut, fmt.Sprintf("/admin/orders/%d/complete", created.ID), nil, env.AdminToken)
		require.Equal(t, 0, resp.Code, resp.Message)

		var done orderData
		resp.Decode(t, &done)
		assert.Equal(t, "COMPLETED", done.Status)
	})

	t.Run("重复完成返回状态错误", func(t *testing.T) {
		resp := env.Do(t, http.MethodPut, fmt.Sprintf("/admin/orders/%d/complete", created.ID), nil, env.AdminToken)
		assert.Equal(t, 40002, resp.Code)
	})
}

// TestConcurrentOrders 并发下单
// 订单号撞车时唯一索引拒绝写入(409),成功的订单号和取餐码都不重复
func TestConcurrentOrders(t *testing.T) {
	env := Setup(t)
	itemID := firstMenuItem(t, env)

	const workers = 10
	body := map[string]interface{}{
		"items":         []map[string]interface{}{{"menuItemId": itemID, "quantity": 1}},
		"paymentMethod": "PAY_NOW",
		"pickupTime":    time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	}

	responses := make([]*Response, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i] = env.Do(t, http.MethodPost, "/orders", body, env.CustomerToken)
		}(i)
	}
	wg.Wait()

	ids := make(map[string]bool)
	tokens := make(map[string]bool)
	for _, resp := range responses {
		// nil表示请求本身失败,Do已经标记了测试失败
		if resp == nil || resp.Status == http.StatusConflict {
			continue
		}
		require.Equal(t, http.StatusCreated, resp.Status, resp.Message)

		var o orderData
		resp.Decode(t, &o)
		assert.False(t, ids[o.OrderID], "订单号重复: %s", o.OrderID)
		assert.False(t, tokens[o.OrderToken], "取餐码重复: %s", o.OrderToken)
		ids[o.OrderID] = true
		tokens[o.OrderToken] = true
		assert.Equal(t, "PAID_UNVERIFIED", o.PaymentStatus)
	}
	assert.NotEmpty(t, ids)
}
