package order

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/cart"
	"github.com/xiebiao/cafe/internal/domain/menu"
	"github.com/xiebiao/cafe/internal/domain/order"
	"github.com/xiebiao/cafe/pkg/clock"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/metrics"
	"github.com/xiebiao/cafe/pkg/tracing"
)

const tracerName = "cafe/order"

// CreateOrderUseCase 下单用例
// 教学要点:这是整个项目最核心的用例
// 涉及:参数校验、批量关联菜单、取餐码生成、事务内生成流水号、清空购物车、事件发布
type CreateOrderUseCase struct {
	orderRepo order.Repository
	menuRepo  menu.Repository
	cartRepo  cart.Repository
	txManager TxManager
	tokenGen  *order.TokenGenerator
	idGen     *order.SequentialIDGenerator
	publisher EventPublisher
	clock     clock.Clock
	logger    *zap.Logger
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	menuRepo menu.Repository,
	cartRepo cart.Repository,
	txManager TxManager,
	tokenGen *order.TokenGenerator,
	idGen *order.SequentialIDGenerator,
	publisher EventPublisher,
	clk clock.Clock,
	logger *zap.Logger,
) *CreateOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		cartRepo:  cartRepo,
		txManager: txManager,
		tokenGen:  tokenGen,
		idGen:     idGen,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	UserID        uint // 从JWT中提取
	Items         []CreateOrderItem
	PaymentMethod string
	PickupTime    time.Time
}

// CreateOrderItem 下单明细
type CreateOrderItem struct {
	MenuItemID string
	Quantity   int
}

// Execute 执行下单
//
// 流程:
//  1. 参数校验(不访问数据库)
//  2. 一次查询关联所有菜品,找不到的菜品跳过
//  3. 事务外生成取餐码,失败直接返回,什么都不写
//  4. 事务内:生成流水号 → 写订单 → 清空购物车
//  5. 提交后发布order.created事件(失败只记日志)
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (dto *OrderDTO, err error) {
	start := uc.clock.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateOrder")
	span.SetAttributes(
		attribute.Int("order.item_count", len(req.Items)),
		attribute.String("order.payment_method", req.PaymentMethod),
	)
	defer func() {
		tracing.EndSpan(span, err)
		metrics.ObserveHistogram(metrics.OrderCreationDuration, uc.clock.Now().Sub(start).Seconds())
		if err != nil {
			metrics.IncCounterVec(metrics.OrdersFailedTotal, failureReason(err))
		}
	}()

	// 1. 参数校验
	method, err := uc.validate(req, start)
	if err != nil {
		return nil, err
	}

	// 2. 批量关联菜单
	items, err := uc.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// 3. 取餐码:事务外生成,唯一性由ExistsByToken检查
	token, err := uc.tokenGen.Generate(ctx, uc.orderRepo.ExistsByToken)
	if err != nil {
		return nil, err
	}

	newOrder := order.NewOrder(req.UserID, items, method, req.PickupTime, token, uc.clock.Now())

	// 4. 事务:流水号紧挨着INSERT生成,计数和写入在同一个事务里
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		newOrder.OrderID = uc.idGen.Generate(txCtx)

		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}
		return uc.cartRepo.ClearByUserID(txCtx, req.UserID)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.id", newOrder.OrderID),
		attribute.String("order.token", newOrder.OrderToken),
	)
	metrics.IncCounterVec(metrics.OrdersCreatedTotal, string(newOrder.PaymentMethod))

	// 5. 事件发布(尽力而为)
	if pubErr := uc.publisher.Publish(ctx, order.EventOrderCreated, order.NewCreatedEvent(newOrder)); pubErr != nil {
		uc.logger.Warn("publish order.created failed",
			zap.String("order_id", newOrder.OrderID),
			zap.Error(pubErr),
		)
	}

	uc.logger.Info("order created",
		zap.String("order_id", newOrder.OrderID),
		zap.String("order_token", newOrder.OrderToken),
		zap.Uint("user_id", newOrder.UserID),
		zap.Int64("total_amount", newOrder.TotalAmount),
		zap.String("trace_id", tracing.ExtractTraceID(ctx)),
	)

	return ToDTO(newOrder), nil
}

func (uc *CreateOrderUseCase) validate(req CreateOrderRequest, now time.Time) (order.PaymentMethod, error) {
	if len(req.Items) == 0 {
		return "", order.ErrEmptyCart
	}
	if req.PickupTime.IsZero() {
		return "", order.ErrPickupTimeRequired
	}
	method := order.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return "", order.ErrInvalidPaymentMethod
	}
	if !req.PickupTime.After(now) {
		return "", order.ErrPickupInPast
	}
	for _, item := range req.Items {
		if item.MenuItemID == "" {
			return "", order.ErrInvalidItem
		}
		if item.Quantity <= 0 {
			return "", order.ErrInvalidQuantity
		}
	}
	return method, nil
}

// resolveItems 按请求顺序生成订单明细,价格取第一个规格
func (uc *CreateOrderUseCase) resolveItems(ctx context.Context, reqItems []CreateOrderItem) ([]order.OrderItem, error) {
	ids := make([]string, len(reqItems))
	for i, item := range reqItems {
		ids[i] = item.MenuItemID
	}

	menuItems, err := uc.menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(reqItems))
	for _, item := range reqItems {
		m, ok := menuItems[item.MenuItemID]
		if !ok {
			uc.logger.Debug("skip unknown menu item", zap.String("menu_item_id", item.MenuItemID))
			continue
		}
		items = append(items, order.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.BasePrice(),
			Quantity:   item.Quantity,
		})
	}
	if len(items) == 0 {
		return nil, order.ErrNoValidItems
	}
	return items, nil
}

func failureReason(err error) string {
	switch apperrors.GetAppError(err).Code {
	case apperrors.ErrCodeInvalidParams:
		return "validation"
	case apperrors.ErrCodeTokenExhausted, apperrors.ErrCodeTokenCheckFailed:
		return "token"
	case apperrors.ErrCodeConflict:
		return "conflict"
	default:
		return "internal"
	}
}
