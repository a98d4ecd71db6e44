package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/order"
	"github.com/xiebiao/cafe/pkg/clock"
)

// ManageOrderUseCase 店员对订单的操作(完成、确认收款、核验、删除)
// 教学要点:状态流转在事务内先加行锁再判断,两个店员同时点"完成"时后到的会收到"订单已完成"
type ManageOrderUseCase struct {
	orderRepo order.Repository
	txManager TxManager
	clock     clock.Clock
	logger    *zap.Logger
}

// NewManageOrderUseCase 创建订单管理用例
func NewManageOrderUseCase(orderRepo order.Repository, txManager TxManager, clk clock.Clock, logger *zap.Logger) *ManageOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManageOrderUseCase{
		orderRepo: orderRepo,
		txManager: txManager,
		clock:     clk,
		logger:    logger,
	}
}

// Complete 完成订单
func (uc *ManageOrderUseCase) Complete(ctx context.Context, id uint) (*OrderDTO, error) {
	return uc.transition(ctx, id, "complete", (*order.Order).Complete)
}

// MarkPaid 到店付款订单确认收款
func (uc *ManageOrderUseCase) MarkPaid(ctx context.Context, id uint) (*OrderDTO, error) {
	return uc.transition(ctx, id, "mark_paid", (*order.Order).MarkPaid)
}

// VerifyAndComplete 线上付款订单核验并完成
func (uc *ManageOrderUseCase) VerifyAndComplete(ctx context.Context, id uint) (*OrderDTO, error) {
	return uc.transition(ctx, id, "verify_complete", (*order.Order).VerifyAndComplete)
}

// Delete 删除订单,不存在返回ErrOrderNotFound
func (uc *ManageOrderUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("order deleted", zap.Uint("id", id))
	return nil
}

// transition 加锁 → 执行领域方法 → 写回
func (uc *ManageOrderUseCase) transition(ctx context.Context, id uint, action string, apply func(*order.Order, time.Time) error) (*OrderDTO, error) {
	var updated *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.LockByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := apply(o, uc.clock.Now()); err != nil {
			return err
		}
		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order updated",
		zap.String("action", action),
		zap.String("order_id", updated.OrderID),
		zap.String("status", string(updated.Status)),
		zap.String("payment_status", string(updated.PaymentStatus)),
	)
	return ToDTO(updated), nil
}
