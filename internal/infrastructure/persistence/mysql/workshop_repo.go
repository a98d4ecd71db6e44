package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/cafe/internal/domain/workshop"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// workshopRepository 工作坊仓储实现(MySQL)
type workshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository 创建工作坊仓储
func NewWorkshopRepository(db *gorm.DB) workshop.Repository {
	return &workshopRepository{db: db}
}

// List 按日期升序
func (r *workshopRepository) List(ctx context.Context) ([]*workshop.Workshop, error) {
	var models []WorkshopModel
	if err := getDB(ctx, r.db).Order("date ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询工作坊失败")
	}
	out := make([]*workshop.Workshop, len(models))
	for i := range models {
		out[i] = toWorkshopEntity(&models[i])
	}
	return out, nil
}

// ListMostRegistered ORDER BY registered_count DESC LIMIT ?
func (r *workshopRepository) ListMostRegistered(ctx context.Context, limit int) ([]*workshop.Workshop, error) {
	var models []WorkshopModel
	err := getDB(ctx, r.db).Order("registered_count DESC").Order("date ASC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询热门工作坊失败")
	}
	out := make([]*workshop.Workshop, len(models))
	for i := range models {
		out[i] = toWorkshopEntity(&models[i])
	}
	return out, nil
}

// LockByID SELECT * FROM workshops WHERE id = ? FOR UPDATE
// 教学要点:和图书扣库存同样的悲观锁,保证名额不会超卖
func (r *workshopRepository) LockByID(ctx context.Context, id uint) (*workshop.Workshop, error) {
	var model WorkshopModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, workshop.ErrWorkshopNotFound
		}
		return nil, apperrors.Wrap(err, "锁定工作坊失败")
	}
	return toWorkshopEntity(&model), nil
}

// UpdateRegisteredCount 写回已报名人数
func (r *workshopRepository) UpdateRegisteredCount(ctx context.Context, w *workshop.Workshop) error {
	result := getDB(ctx, r.db).Model(&WorkshopModel{}).Where("id = ?", w.ID).Updates(map[string]interface{}{
		"registered_count": w.RegisteredCount,
		"updated_at":       w.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新报名人数失败")
	}
	if result.RowsAffected == 0 {
		return workshop.ErrWorkshopNotFound
	}
	return nil
}

// CreateRegistration 保存报名记录
func (r *workshopRepository) CreateRegistration(ctx context.Context, reg *workshop.Registration) error {
	model := &WorkshopRegistrationModel{
		WorkshopID:    reg.WorkshopID,
		WorkshopTitle: reg.WorkshopTitle,
		Name:          reg.Name,
		Phone:         reg.Phone,
		Email:         reg.Email,
		Status:        string(reg.Status),
		CreatedAt:     reg.CreatedAt,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "保存报名记录失败")
	}
	reg.ID = model.ID
	return nil
}

// ListRegistrations 按报名时间倒序
func (r *workshopRepository) ListRegistrations(ctx context.Context) ([]*workshop.Registration, error) {
	var models []WorkshopRegistrationModel
	if err := getDB(ctx, r.db).Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询报名记录失败")
	}
	out := make([]*workshop.Registration, len(models))
	for i, m := range models {
		out[i] = &workshop.Registration{
			ID:            m.ID,
			WorkshopID:    m.WorkshopID,
			WorkshopTitle: m.WorkshopTitle,
			Name:          m.Name,
			Phone:         m.Phone,
			Email:         m.Email,
			Status:        workshop.RegistrationStatus(m.Status),
			CreatedAt:     m.CreatedAt,
		}
	}
	return out, nil
}

func toWorkshopEntity(m *WorkshopModel) *workshop.Workshop {
	return &workshop.Workshop{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Date:            m.Date,
		TotalSeats:      m.TotalSeats,
		RegisteredCount: m.RegisteredCount,
		Tags:            splitTags(m.Tags),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toWorkshopModel(w *workshop.Workshop) *WorkshopModel {
	return &WorkshopModel{
		ID:              w.ID,
		Title:           w.Title,
		Description:     w.Description,
		Date:            w.Date,
		TotalSeats:      w.TotalSeats,
		RegisteredCount: w.RegisteredCount,
		Tags:            joinTags(w.Tags),
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
