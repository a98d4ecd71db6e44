package art

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func TestArt_ReserveAndRelease(t *testing.T) {
	t.Run("可预订的作品被预订", func(t *testing.T) {
		a := &Art{ID: 1, Availability: Available}
		require.NoError(t, a.Reserve(now))
		assert.Equal(t, Reserved, a.Availability)
		assert.Equal(t, now, a.UpdatedAt)

		assert.True(t, a.Release(now))
		assert.Equal(t, Available, a.Availability)
		assert.False(t, a.Release(now), "已经可预订时不再变化")
	})

	t.Run("已售出不能预订也不会被释放", func(t *testing.T) {
		a := &Art{ID: 2, Availability: Sold}
		assert.ErrorIs(t, a.Reserve(now), ErrArtSold)
		assert.False(t, a.Release(now))
		assert.Equal(t, Sold, a.Availability)
	})

	t.Run("状态字典序", func(t *testing.T) {
		assert.Less(t, string(Available), string(Reserved))
		assert.Less(t, string(Reserved), string(Sold))
	})
}

func TestNewBooking(t *testing.T) {
	a := &Art{ID: 3, Title: "Monsoon Blue", Availability: Reserved}

	t.Run("创建待处理申请", func(t *testing.T) {
		b, err := NewBooking(a, " Meera ", "9000000000", "", "Can I see it?", now)
		require.NoError(t, err)
		assert.Equal(t, uint(3), b.ArtID)
		assert.Equal(t, "Monsoon Blue", b.ArtName)
		assert.Equal(t, "Meera", b.UserName)
		assert.Equal(t, BookingPending, b.Status)

		b.Accept(now)
		assert.Equal(t, BookingAccepted, b.Status)
		b.Reject(now)
		assert.Equal(t, BookingRejected, b.Status)
	})

	t.Run("缺少姓名或电话", func(t *testing.T) {
		_, err := NewBooking(a, "", "1", "", "", now)
		assert.ErrorIs(t, err, ErrMissingFields)
		_, err = NewBooking(a, "A", "  ", "", "", now)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("已售出不接受申请", func(t *testing.T) {
		_, err := NewBooking(&Art{ID: 4, Availability: Sold}, "A", "1", "", "", now)
		assert.ErrorIs(t, err, ErrArtSold)
	})
}
