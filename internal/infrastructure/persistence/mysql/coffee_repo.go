package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/cafe/internal/domain/coffee"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// coffeeRepository 咖啡目录仓储实现(MySQL)
type coffeeRepository struct {
	db *gorm.DB
}

// NewCoffeeRepository 创建咖啡目录仓储
func NewCoffeeRepository(db *gorm.DB) coffee.Repository {
	return &coffeeRepository{db: db}
}

// List 招牌在前,新品在前
func (r *coffeeRepository) List(ctx context.Context) ([]*coffee.Coffee, error) {
	var models []CoffeeModel
	err := getDB(ctx, r.db).Order("is_signature DESC").Order("created_at DESC").Order("id DESC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询咖啡目录失败")
	}
	return toCoffeeEntities(models), nil
}

// ListSignature 招牌款按热度倒序
func (r *coffeeRepository) ListSignature(ctx context.Context, limit int) ([]*coffee.Coffee, error) {
	var models []CoffeeModel
	err := getDB(ctx, r.db).Where("is_signature = ?", true).
		Order("popularity DESC").Order("id ASC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询招牌咖啡失败")
	}
	return toCoffeeEntities(models), nil
}

// ListByTag FIND_IN_SET按逗号分隔的标签精确匹配
func (r *coffeeRepository) ListByTag(ctx context.Context, tag string, limit int) ([]*coffee.Coffee, error) {
	var models []CoffeeModel
	err := getDB(ctx, r.db).Where("FIND_IN_SET(?, tags) > 0", tag).
		Order("id ASC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "查询标签为%s的咖啡失败", tag)
	}
	return toCoffeeEntities(models), nil
}

// FindMatches WHERE strength = ? OR FIND_IN_SET(tag1, tags) OR ...
// 条件分组后再排序分页,招牌和热门的排在前面
func (r *coffeeRepository) FindMatches(ctx context.Context, strength string, tags []string, limit int) ([]*coffee.Coffee, error) {
	tags = uniqueStrings(tags)
	if strength == "" && len(tags) == 0 {
		return []*coffee.Coffee{}, nil
	}

	cond := r.db.Where("strength = ?", strength)
	for _, tag := range tags {
		cond = cond.Or("FIND_IN_SET(?, tags) > 0", tag)
	}

	var models []CoffeeModel
	err := getDB(ctx, r.db).Where(cond).
		Order("is_signature DESC").Order("popularity DESC").Order("id ASC").
		Limit(limit).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "按浓度%s匹配咖啡失败", strength)
	}
	return toCoffeeEntities(models), nil
}

func toCoffeeEntities(models []CoffeeModel) []*coffee.Coffee {
	out := make([]*coffee.Coffee, len(models))
	for i := range models {
		out[i] = toCoffeeEntity(&models[i])
	}
	return out
}

func toCoffeeEntity(m *CoffeeModel) *coffee.Coffee {
	return &coffee.Coffee{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Strength:    m.Strength,
		Tags:        splitTags(m.Tags),
		IsSignature: m.IsSignature,
		Popularity:  m.Popularity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCoffeeModel(c *coffee.Coffee) *CoffeeModel {
	return &CoffeeModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Strength:    c.Strength,
		Tags:        joinTags(c.Tags),
		IsSignature: c.IsSignature,
		Popularity:  c.Popularity,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
