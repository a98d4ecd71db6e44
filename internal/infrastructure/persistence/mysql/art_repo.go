package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/cafe/internal/domain/art"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// artRepository 艺术品与预订申请仓储实现(MySQL)
type artRepository struct {
	db *gorm.DB
}

// NewArtRepository 创建艺术品仓储
func NewArtRepository(db *gorm.DB) art.Repository {
	return &artRepository{db: db}
}

// List ORDER BY availability ASC, created_at DESC
func (r *artRepository) List(ctx context.Context) ([]*art.Art, error) {
	var models []ArtModel
	err := getDB(ctx, r.db).Order("availability ASC").Order("created_at DESC").Order("id DESC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询艺术品失败")
	}
	return toArtEntities(models), nil
}

func (r *artRepository) ListByMoodTag(ctx context.Context, mood string, limit int) ([]*art.Art, error) {
	q := getDB(ctx, r.db)
	if mood != "" {
		q = q.Where("FIND_IN_SET(?, mood_tags) > 0", mood)
	}
	var models []ArtModel
	if err := q.Order("id ASC").Limit(limit).Find(&models).Error; err != nil {
		return nil, apperrors.Wrapf(err, "查询心情为%s的艺术品失败", mood)
	}
	return toArtEntities(models), nil
}

func (r *artRepository) ListUnsoldByPrice(ctx context.Context, limit int) ([]*art.Art, error) {
	var models []ArtModel
	err := getDB(ctx, r.db).Where("availability <> ?", string(art.Sold)).
		Order("price DESC").Order("id ASC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询未售出艺术品失败")
	}
	return toArtEntities(models), nil
}

func (r *artRepository) FindByID(ctx context.Context, id uint) (*art.Art, error) {
	var model ArtModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, art.ErrArtNotFound
		}
		return nil, apperrors.Wrapf(err, "查询艺术品%d失败", id)
	}
	return toArtEntity(&model), nil
}

// LockByID SELECT * FROM art_pieces WHERE id = ? FOR UPDATE
func (r *artRepository) LockByID(ctx context.Context, id uint) (*art.Art, error) {
	var model ArtModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, art.ErrArtNotFound
		}
		return nil, apperrors.Wrapf(err, "锁定艺术品%d失败", id)
	}
	return toArtEntity(&model), nil
}

// UpdateAvailability 行已被LockByID锁定,不再检查影响行数
// (MySQL值未变化时RowsAffected为0)
func (r *artRepository) UpdateAvailability(ctx context.Context, a *art.Art) error {
	result := getDB(ctx, r.db).Model(&ArtModel{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"availability": string(a.Availability),
		"updated_at":   a.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新艺术品状态失败")
	}
	return nil
}

func (r *artRepository) CreateBooking(ctx context.Context, b *art.Booking) error {
	model := toBookingModel(b)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "保存预订申请失败")
	}
	b.ID = model.ID
	return nil
}

// LockBookingByID 同一申请的接受/拒绝串行执行
func (r *artRepository) LockBookingByID(ctx context.Context, id uint) (*art.Booking, error) {
	var model ArtBookingModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, art.ErrBookingNotFound
		}
		return nil, apperrors.Wrapf(err, "锁定预订申请%d失败", id)
	}
	return toBookingEntity(&model), nil
}

func (r *artRepository) UpdateBookingStatus(ctx context.Context, b *art.Booking) error {
	result := getDB(ctx, r.db).Model(&ArtBookingModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"status":     string(b.Status),
		"updated_at": b.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新预订申请失败")
	}
	return nil
}

// ListBookings COUNT + LIMIT/OFFSET
func (r *artRepository) ListBookings(ctx context.Context, offset, limit int) ([]*art.Booking, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&ArtBookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计预订申请失败")
	}

	var models []ArtBookingModel
	err := db.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询预订申请失败")
	}
	out := make([]*art.Booking, len(models))
	for i := range models {
		out[i] = toBookingEntity(&models[i])
	}
	return out, total, nil
}

func (r *artRepository) HasOtherAccepted(ctx context.Context, artID, excludeID uint) (bool, error) {
	var n int64
	err := getDB(ctx, r.db).Model(&ArtBookingModel{}).
		Where("art_id = ? AND status = ? AND id <> ?", artID, string(art.BookingAccepted), excludeID).
		Count(&n).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询已接受的预订失败")
	}
	return n > 0, nil
}

func toArtEntities(models []ArtModel) []*art.Art {
	out := make([]*art.Art, len(models))
	for i := range models {
		out[i] = toArtEntity(&models[i])
	}
	return out
}

func toArtEntity(m *ArtModel) *art.Art {
	return &art.Art{
		ID:           m.ID,
		Title:        m.Title,
		ArtistName:   m.ArtistName,
		Description:  m.Description,
		Price:        m.Price,
		ImageURL:     m.ImageURL,
		Availability: art.Availability(m.Availability),
		MoodTags:     splitTags(m.MoodTags),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toArtModel(a *art.Art) *ArtModel {
	return &ArtModel{
		ID:           a.ID,
		Title:        a.Title,
		ArtistName:   a.ArtistName,
		Description:  a.Description,
		Price:        a.Price,
		ImageURL:     a.ImageURL,
		Availability: string(a.Availability),
		MoodTags:     joinTags(a.MoodTags),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toBookingModel(b *art.Booking) *ArtBookingModel {
	return &ArtBookingModel{
		ID:        b.ID,
		ArtID:     b.ArtID,
		ArtName:   b.ArtName,
		UserName:  b.UserName,
		Phone:     b.Phone,
		Email:     b.Email,
		Message:   b.Message,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBookingEntity(m *ArtBookingModel) *art.Booking {
	return &art.Booking{
		ID:        m.ID,
		ArtID:     m.ArtID,
		ArtName:   m.ArtName,
		UserName:  m.UserName,
		Phone:     m.Phone,
		Email:     m.Email,
		Message:   m.Message,
		Status:    art.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
