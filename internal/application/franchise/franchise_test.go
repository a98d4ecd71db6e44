package franchise

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/cafe/internal/domain/franchise"
	"github.com/xiebiao/cafe/pkg/clock"
)

type fakeRepo struct {
	enquiries []*franchise.Enquiry
}

func (r *fakeRepo) Create(_ context.Context, e *franchise.Enquiry) error {
	e.ID = uint(len(r.enquiries) + 1)
	r.enquiries = append(r.enquiries, e)
	return nil
}

func (r *fakeRepo) List(_ context.Context, offset, limit int) ([]*franchise.Enquiry, int64, error) {
	out := make([]*franchise.Enquiry, 0, len(r.enquiries))
	for i := len(r.enquiries) - 1; i >= 0; i-- {
		out = append(out, r.enquiries[i])
	}
	total := int64(len(out))
	if offset >= len(out) {
		return []*franchise.Enquiry{}, total, nil
	}
	return out[offset:min(offset+limit, len(out))], total, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id uint, status franchise.Status) (*franchise.Enquiry, error) {
	for _, e := range r.enquiries {
		if e.ID == id {
			e.Status = status
			return e, nil
		}
	}
	return nil, franchise.ErrEnquiryNotFound
}

func TestEnquiry(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewEnquiryUseCase(repo, clock.NewFixed(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)), nil)
	ctx := context.Background()

	t.Run("提交咨询", func(t *testing.T) {
		dto, err := uc.Submit(ctx, SubmitRequest{FullName: "Riya", Phone: "98765", City: "Surat", InvestmentRange: "10-20L"})
		require.NoError(t, err)
		assert.Equal(t, "NEW", dto.Status)
		assert.Equal(t, uint(1), dto.ID)
	})

	t.Run("缺少城市", func(t *testing.T) {
		_, err := uc.Submit(ctx, SubmitRequest{FullName: "Riya", Phone: "98765"})
		assert.ErrorIs(t, err, franchise.ErrMissingFields)
	})

	t.Run("列表倒序", func(t *testing.T) {
		_, err := uc.Submit(ctx, SubmitRequest{FullName: "Dev", Phone: "12345", City: "Pune"})
		require.NoError(t, err)
		list, total, err := uc.List(ctx, 1, 20)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "Dev", list[0].FullName)
	})

	t.Run("分页", func(t *testing.T) {
		list, total, err := uc.List(ctx, 2, 1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "Riya", list[0].FullName)

		list, _, err = uc.List(ctx, 3, 1)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("更新状态", func(t *testing.T) {
		dto, err := uc.UpdateStatus(ctx, 1, "CONTACTED")
		require.NoError(t, err)
		assert.Equal(t, "CONTACTED", dto.Status)

		_, err = uc.UpdateStatus(ctx, 1, "CLOSED")
		assert.ErrorIs(t, err, franchise.ErrInvalidStatus)

		_, err = uc.UpdateStatus(ctx, 42, "NEW")
		assert.ErrorIs(t, err, franchise.ErrEnquiryNotFound)
	})
}
