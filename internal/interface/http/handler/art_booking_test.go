package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appart "github.com/xiebiao/cafe/internal/application/art"
	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/pkg/clock"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/response"
)

// memArtRepo 预订流程用到的方法,其余方法没有实现
type memArtRepo struct {
	art.Repository
	pieces   map[uint]*art.Art
	bookings []*art.Booking
}

func (r *memArtRepo) FindByID(_ context.Context, id uint) (*art.Art, error) {
	if a, ok := r.pieces[id]; ok {
		return a, nil
	}
	return nil, art.ErrArtNotFound
}

func (r *memArtRepo) LockByID(ctx context.Context, id uint) (*art.Art, error) {
	return r.FindByID(ctx, id)
}

func (r *memArtRepo) UpdateAvailability(context.Context, *art.Art) error { return nil }

func (r *memArtRepo) CreateBooking(_ context.Context, b *art.Booking) error {
	b.ID = uint(len(r.bookings) + 1)
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *memArtRepo) LockBookingByID(_ context.Context, id uint) (*art.Booking, error) {
	if id == 0 || int(id) > len(r.bookings) {
		return nil, art.ErrBookingNotFound
	}
	return r.bookings[id-1], nil
}

func (r *memArtRepo) UpdateBookingStatus(context.Context, *art.Booking) error { return nil }

func (r *memArtRepo) ListBookings(_ context.Context, offset, limit int) ([]*art.Booking, int64, error) {
	total := int64(len(r.bookings))
	if offset >= len(r.bookings) {
		return []*art.Booking{}, total, nil
	}
	return r.bookings[offset:min(offset+limit, len(r.bookings))], total, nil
}

func newArtBookingEngine(repo *memArtRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArtBookingHandler(appart.NewBookingUseCase(repo, directTx{}, clock.NewFixed(now), nil))

	r := gin.New()
	r.POST("/art/book", h.CreateBooking)
	r.GET("/admin/art/bookings", h.ListBookings)
	r.PATCH("/admin/art/bookings/:id/accept", h.AcceptBooking)
	r.PATCH("/admin/art/bookings/:id/reject", h.RejectBooking)
	return r
}

func serve(t *testing.T, r *gin.Engine, method, path, payload string) (int, body) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var b body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return w.Code, b
}

func TestArtBookingHandler(t *testing.T) {
	repo := &memArtRepo{pieces: map[uint]*art.Art{
		1: {ID: 1, Title: "Monsoon Blue", Availability: art.Available},
		2: {ID: 2, Title: "Copper Dusk", Availability: art.Sold},
	}}
	r := newArtBookingEngine(repo)

	t.Run("提交申请返回201", func(t *testing.T) {
		status, b := serve(t, r, http.MethodPost, "/art/book", `{"artId":1,"userName":"Meera","phone":"9000000000"}`)
		assert.Equal(t, http.StatusCreated, status)

		var got appart.BookingDTO
		require.NoError(t, json.Unmarshal(b.Data, &got))
		assert.Equal(t, "PENDING", got.Status)
		assert.Equal(t, "Monsoon Blue", got.ArtName)
	})

	t.Run("已售出返回400", func(t *testing.T) {
		status, b := serve(t, r, http.MethodPost, "/art/book", `{"artId":2,"userName":"Meera","phone":"9000000000"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, apperrors.ErrCodeArtSold, b.Code)
	})

	t.Run("作品不存在返回404", func(t *testing.T) {
		status, b := serve(t, r, http.MethodPost, "/art/book", `{"artId":9,"userName":"Meera","phone":"9000000000"}`)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, apperrors.ErrCodeArtNotFound, b.Code)
	})

	t.Run("接受后返回作品状态", func(t *testing.T) {
		status, b := serve(t, r, http.MethodPatch, "/admin/art/bookings/1/accept", "")
		require.Equal(t, http.StatusOK, status)

		var got appart.BookingDTO
		require.NoError(t, json.Unmarshal(b.Data, &got))
		assert.Equal(t, "ACCEPTED", got.Status)
		require.NotNil(t, got.Art)
		assert.Equal(t, "reserved", got.Art.Availability)
	})

	t.Run("申请不存在返回404", func(t *testing.T) {
		status, b := serve(t, r, http.MethodPatch, "/admin/art/bookings/42/reject", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, apperrors.ErrCodeBookingNotFound, b.Code)
	})

	t.Run("非法ID", func(t *testing.T) {
		status, b := serve(t, r, http.MethodPatch, "/admin/art/bookings/abc/accept", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, b.Code)
	})

	t.Run("分页列表", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			serve(t, r, http.MethodPost, "/art/book", `{"artId":1,"userName":"Asha","phone":"9000000001"}`)
		}

		status, b := serve(t, r, http.MethodGet, "/admin/art/bookings?page=2&pageSize=2", "")
		require.Equal(t, http.StatusOK, status)

		var page struct {
			response.PageData
			List []appart.BookingDTO `json:"list"`
		}
		require.NoError(t, json.Unmarshal(b.Data, &page))
		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.List, 2)
	})

	t.Run("pageSize超过上限", func(t *testing.T) {
		status, b := serve(t, r, http.MethodGet, "/admin/art/bookings?pageSize=500", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, apperrors.ErrCodeBindError, b.Code)
	})
}
