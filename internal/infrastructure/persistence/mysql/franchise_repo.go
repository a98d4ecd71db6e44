package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/cafe/internal/domain/franchise"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// franchiseRepository 加盟咨询仓储实现(MySQL)
type franchiseRepository struct {
	db *gorm.DB
}

// NewFranchiseRepository 创建加盟咨询仓储
func NewFranchiseRepository(db *gorm.DB) franchise.Repository {
	return &franchiseRepository{db: db}
}

func (r *franchiseRepository) Create(ctx context.Context, e *franchise.Enquiry) error {
	model := toEnquiryModel(e)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "保存加盟咨询失败")
	}
	e.ID = model.ID
	return nil
}

// List COUNT + LIMIT/OFFSET
func (r *franchiseRepository) List(ctx context.Context, offset, limit int) ([]*franchise.Enquiry, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&FranchiseEnquiryModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计加盟咨询失败")
	}

	var models []FranchiseEnquiryModel
	err := db.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询加盟咨询失败")
	}
	out := make([]*franchise.Enquiry, len(models))
	for i := range models {
		out[i] = toEnquiryEntity(&models[i])
	}
	return out, total, nil
}

// UpdateStatus 更新状态后重新查询,返回最新记录
func (r *franchiseRepository) UpdateStatus(ctx context.Context, id uint, status franchise.Status) (*franchise.Enquiry, error) {
	db := getDB(ctx, r.db)

	var model FranchiseEnquiryModel
	if err := db.First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, franchise.ErrEnquiryNotFound
		}
		return nil, apperrors.Wrap(err, "查询加盟咨询失败")
	}

	if err := db.Model(&model).Update("status", string(status)).Error; err != nil {
		return nil, apperrors.Wrap(err, "更新加盟咨询失败")
	}
	return toEnquiryEntity(&model), nil
}

func toEnquiryModel(e *franchise.Enquiry) *FranchiseEnquiryModel {
	return &FranchiseEnquiryModel{
		ID:              e.ID,
		FullName:        e.FullName,
		Phone:           e.Phone,
		Email:           e.Email,
		City:            e.City,
		InvestmentRange: e.InvestmentRange,
		Message:         e.Message,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toEnquiryEntity(m *FranchiseEnquiryModel) *franchise.Enquiry {
	return &franchise.Enquiry{
		ID:              m.ID,
		FullName:        m.FullName,
		Phone:           m.Phone,
		Email:           m.Email,
		City:            m.City,
		InvestmentRange: m.InvestmentRange,
		Message:         m.Message,
		Status:          franchise.Status(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
