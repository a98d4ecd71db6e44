package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/cafe/internal/application/catalog"
	"github.com/xiebiao/cafe/internal/application/recommend"
	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/internal/domain/coffee"
	"github.com/xiebiao/cafe/internal/interface/http/handler"
	"github.com/xiebiao/cafe/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/jwt"
)

const testSecret = "router-test-secret"

type stubBlacklist map[string]bool

func (b stubBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	return b[token], nil
}

// stubCoffees 目录和推荐共用的内存咖啡目录
type stubCoffees struct {
	coffee.Repository
	all []*coffee.Coffee
}

func (r stubCoffees) List(context.Context) ([]*coffee.Coffee, error) { return r.all, nil }

func (r stubCoffees) FindMatches(_ context.Context, strength string, tags []string, limit int) ([]*coffee.Coffee, error) {
	var out []*coffee.Coffee
	for _, c := range r.all {
		if c.Matches(strength, tags) && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubArt struct {
	art.Repository
	all []*art.Art
}

func (r stubArt) List(context.Context) ([]*art.Art, error) { return r.all, nil }

func (r stubArt) ListByMoodTag(_ context.Context, mood string, limit int) ([]*art.Art, error) {
	var out []*art.Art
	for _, a := range r.all {
		for _, t := range a.MoodTags {
			if t == mood && len(out) < limit {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

var (
	testCoffees = stubCoffees{all: []*coffee.Coffee{
		{ID: 1, Name: "Filter Kaapi", Strength: coffee.StrengthStrong, Tags: []string{"bold"}, IsSignature: true},
		{ID: 2, Name: "Vanilla Cloud", Strength: coffee.StrengthLight, Tags: []string{"milk"}},
		{ID: 3, Name: "Cold Brew", Strength: coffee.StrengthStrong},
		{ID: 4, Name: "Double Ristretto", Strength: coffee.StrengthStrong},
	}}
	testArt = stubArt{all: []*art.Art{
		{ID: 1, Title: "Ember", Availability: art.Available, MoodTags: []string{"cozy"}},
		{ID: 2, Title: "Monsoon Blue", Availability: art.Sold, MoodTags: []string{"calm"}},
	}}
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// 推荐和目录接口用内存仓储,其他路由在鉴权阶段就会被拦下
func newTestEngine(t *testing.T, revoked stubBlacklist) (*gin.Engine, *jwt.Manager, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	jm := jwt.NewManager(testSecret, time.Hour)

	h := Handlers{
		Menu:       handler.NewMenuHandler(nil),
		Cart:       handler.NewCartHandler(nil),
		Order:      handler.NewOrderHandler(nil, nil),
		AdminOrder: handler.NewAdminOrderHandler(nil, nil),
		Workshop:   handler.NewWorkshopHandler(nil),
		Franchise:  handler.NewFranchiseHandler(nil),
		Recommend:  handler.NewRecommendHandler(recommend.NewRecommendUseCase(testCoffees, testArt)),
		Catalog:    handler.NewCatalogHandler(catalog.NewCatalogUseCase(testCoffees, testArt), nil),
		ArtBooking: handler.NewArtBookingHandler(nil),
		Token:      handler.NewTokenHandler(jm, nil, nil, nil),
	}
	r := New(Options{Mode: gin.TestMode}, zap.New(core), h, middleware.NewAuthMiddleware(jm, revoked))
	return r, jm, logs
}

func do(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPublicRoutes(t *testing.T) {
	r, _, logs := newTestEngine(t, nil)

	t.Run("健康检查", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/ping", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("沿用上游请求ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(middleware.HeaderRequestID))

		entries := logs.FilterField(zap.String("request_id", "req-123")).All()
		require.Len(t, entries, 1)
		assert.Equal(t, "request", entries[0].Message)
	})

	t.Run("咖啡推荐带最多3个匹配单品", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/ai/coffee", "", `{"mood":"bold","timeOfDay":"morning","prefersMilk":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			AIPick struct {
				Strength string   `json:"strength"`
				Tags     []string `json:"tags"`
			} `json:"aiPick"`
			Matches []struct {
				Name string `json:"name"`
			} `json:"matches"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
		assert.Equal(t, "strong", got.AIPick.Strength)
		assert.Contains(t, got.AIPick.Tags, "milk")
		require.Len(t, got.Matches, 3)
		assert.Equal(t, "Filter Kaapi", got.Matches[0].Name)
		assert.Equal(t, "Vanilla Cloud", got.Matches[1].Name, "浓度不同但带milk标签")
	})

	t.Run("艺术和工作坊推荐", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/ai/art", "", `{"mood":"cozy"}`)
		var got struct {
			AIPick  json.RawMessage `json:"aiPick"`
			Matches []struct {
				Title string `json:"title"`
			} `json:"matches"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
		assert.JSONEq(t, `{"theme":"warm textured"}`, string(got.AIPick))
		require.Len(t, got.Matches, 1)
		assert.Equal(t, "Ember", got.Matches[0].Title)

		w = do(r, http.MethodPost, "/api/v1/ai/workshop", "", `{"vibe":"focused"}`)
		assert.JSONEq(t, `{"aiPick":{"recommendation":"Precision Brew Lab"}}`, string(decode(t, w).Data))
	})

	t.Run("咖啡和艺术品目录", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/coffees", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		var coffees []catalog.CoffeeDTO
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &coffees))
		assert.Len(t, coffees, 4)

		w = do(r, http.MethodGet, "/api/v1/art", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		var pieces []catalog.ArtDTO
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &pieces))
		require.Len(t, pieces, 2)
		assert.Equal(t, "sold", pieces[1].Availability)
	})

	t.Run("请求体格式错误", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/ai/art", "", `{"mood":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodeBindError, decode(t, w).Code)
	})

	t.Run("Prometheus指标", func(t *testing.T) {
		w := do(r, http.MethodGet, "/metrics", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http_requests_total")
	})
}

func TestAuth(t *testing.T) {
	r, jm, _ := newTestEngine(t, nil)
	customer, err := jm.GenerateToken(42, jwt.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantCode   int
	}{
		{"购物车未登录", http.MethodGet, "/api/v1/cart", "", http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{"下单Token无效", http.MethodPost, "/api/v1/orders", "not-a-jwt", http.StatusUnauthorized, apperrors.ErrCodeInvalidToken},
		{"顾客访问店员接口", http.MethodGet, "/api/v1/admin/orders", customer, http.StatusForbidden, apperrors.ErrCodeForbidden},
		{"顾客删除订单", http.MethodDelete, "/api/v1/admin/orders/1", customer, http.StatusForbidden, apperrors.ErrCodeForbidden},
		{"顾客查看加盟咨询", http.MethodGet, "/api/v1/admin/franchise/enquiries", customer, http.StatusForbidden, apperrors.ErrCodeForbidden},
		{"顾客查看预订申请", http.MethodGet, "/api/v1/admin/art/bookings", customer, http.StatusForbidden, apperrors.ErrCodeForbidden},
		{"顾客接受预订", http.MethodPatch, "/api/v1/admin/art/bookings/1/accept", customer, http.StatusForbidden, apperrors.ErrCodeForbidden},
		{"未登录拒绝预订", http.MethodPatch, "/api/v1/admin/art/bookings/1/reject", "", http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{"顾客吊销Token", http.MethodPost, "/api/v1/admin/tokens/revoke", customer, http.StatusForbidden, apperrors.ErrCodeForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w).Code)
		})
	}

	t.Run("Authorization格式错误", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Token "+customer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, decode(t, w).Code)
	})
}

func TestAuth_Blacklist(t *testing.T) {
	jm := jwt.NewManager(testSecret, time.Hour)
	token, err := jm.GenerateToken(42, jwt.RoleAdmin)
	require.NoError(t, err)

	r, _, _ := newTestEngine(t, stubBlacklist{token: true})
	w := do(r, http.MethodGet, "/api/v1/admin/orders", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperrors.ErrCodeTokenExpired, decode(t, w).Code)
}
