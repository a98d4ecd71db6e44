package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/cafe/internal/domain/order"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 教学要点:
// 1. Order和OrderItem是聚合关系,必须一起保存
// 2. 查询时使用Preload预加载明细,避免N+1问题
// 3. 事务通过context传递
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(包含明细)
// 唯一索引冲突(order_id/order_token)转换为ErrOrderConflict
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return order.ErrOrderConflict.WithCause(err)
		}
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID
	o.ID = model.ID
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

// FindByID 根据ID查找订单
// Preload("Items")会执行:
// 1. SELECT * FROM orders WHERE id = ?
// 2. SELECT * FROM order_items WHERE order_id IN (?)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Items").First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// LockByID SELECT * FROM orders WHERE id = ? FOR UPDATE
// 教学要点:必须在事务中调用,否则语句结束锁就释放了
func (r *orderRepository) LockByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "锁定订单失败")
	}
	return toOrderEntity(&model), nil
}

// List 管理端列表,按创建时间倒序
func (r *orderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	query := getDB(ctx, r.db).Model(&OrderModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var models []OrderModel
	if err := query.Preload("Items").Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, nil
}

// Update 只更新状态字段,订单号、取餐码和明细不可变
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	result := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"status":         string(o.Status),
		"payment_status": string(o.PaymentStatus),
		"updated_at":     o.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// Delete 删除订单及明细
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
			return apperrors.Wrap(err, "删除订单明细失败")
		}
		result := tx.Delete(&OrderModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除订单失败")
		}
		if result.RowsAffected == 0 {
			return order.ErrOrderNotFound
		}
		return nil
	})
}

// ExistsByToken 取餐码是否已被占用
func (r *orderRepository) ExistsByToken(ctx context.Context, token string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&OrderModel{}).Where("order_token = ?", token).Limit(1).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询取餐码失败")
	}
	return count > 0, nil
}

// CountCreatedBetween SELECT COUNT(*) FROM orders WHERE created_at >= ? AND created_at < ?
// 走created_at索引
func (r *orderRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&OrderModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计订单数失败")
	}
	return count, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	return &OrderModel{
		ID:            o.ID,
		OrderID:       o.OrderID,
		OrderToken:    o.OrderToken,
		UserID:        o.UserID,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		PickupTime:    o.PickupTime,
		Status:        string(o.Status),
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.OrderItem{
			ID:         item.ID,
			OrderID:    item.OrderID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	return &order.Order{
		ID:            model.ID,
		OrderID:       model.OrderID,
		OrderToken:    model.OrderToken,
		UserID:        model.UserID,
		Items:         items,
		TotalAmount:   model.TotalAmount,
		PaymentMethod: order.PaymentMethod(model.PaymentMethod),
		PaymentStatus: order.PaymentStatus(model.PaymentStatus),
		PickupTime:    model.PickupTime,
		Status:        order.Status(model.Status),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
