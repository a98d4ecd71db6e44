package order

import (
	"strings"
	"time"
)

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentPayNow       PaymentMethod = "PAY_NOW"        // 线上支付，待店员核验
	PaymentPayAtCounter PaymentMethod = "PAY_AT_COUNTER" // 到店付款
)

// Valid 是否为支持的支付方式
func (m PaymentMethod) Valid() bool {
	return m == PaymentPayNow || m == PaymentPayAtCounter
}

// PaymentStatus 支付状态
type PaymentStatus string

const (
	PaymentStatusPending        PaymentStatus = "PENDING"         // 等待到店收款
	PaymentStatusPaidUnverified PaymentStatus = "PAID_UNVERIFIED" // 已付款，待核验
	PaymentStatusPaid           PaymentStatus = "PAID"            // 已确认收款
)

// Status 订单状态
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus 解析状态字符串（大小写不敏感），未知值返回false
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(s)) {
	case StatusPending:
		return StatusPending, true
	case StatusCompleted:
		return StatusCompleted, true
	}
	return "", false
}

// Order 订单实体(聚合根)
// 教学要点:
// 1. OrderID是给顾客看的流水号(ORD-YYYYMMDD-NNN)，写入后不再变化
// 2. OrderToken是取餐/核验码(如LAT-4821)，店员凭它核对付款
// 3. TotalAmount冗余存储，避免菜单改价影响历史订单
type Order struct {
	ID            uint
	OrderID       string
	OrderToken    string
	UserID        uint
	Items         []OrderItem
	TotalAmount   int64 // 分
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	PickupTime    time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem 订单明细，记录下单时的名称和单价快照
type OrderItem struct {
	ID         uint
	OrderID    uint
	MenuItemID string
	Name       string
	Price      int64 // 下单时单价(分)
	Quantity   int
}

// NewOrder 创建新订单(工厂方法)
// OrderID由仓储在事务内生成后回填
func NewOrder(userID uint, items []OrderItem, method PaymentMethod, pickupTime time.Time, token string, now time.Time) *Order {
	o := &Order{
		OrderToken:    token,
		UserID:        userID,
		Items:         items,
		PaymentMethod: method,
		PaymentStatus: InitialPaymentStatus(method),
		PickupTime:    pickupTime,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	o.TotalAmount = o.CalculateTotal()
	return o
}

// InitialPaymentStatus 下单时的支付状态
// PAY_NOW先标记为已付款待核验，到店付款等待收银
func InitialPaymentStatus(method PaymentMethod) PaymentStatus {
	if method == PaymentPayNow {
		return PaymentStatusPaidUnverified
	}
	return PaymentStatusPending
}

// Complete 店员完成订单
func (o *Order) Complete(now time.Time) error {
	if o.Status == StatusCompleted {
		return ErrOrderAlreadyCompleted
	}
	o.Status = StatusCompleted
	o.UpdatedAt = now
	return nil
}

// MarkPaid 到店付款订单确认收款
func (o *Order) MarkPaid(now time.Time) error {
	if o.PaymentMethod != PaymentPayAtCounter {
		return ErrWrongPaymentMethod
	}
	if o.PaymentStatus == PaymentStatusPaid {
		return ErrAlreadyPaid
	}
	o.PaymentStatus = PaymentStatusPaid
	o.UpdatedAt = now
	return nil
}

// VerifyAndComplete 核验线上付款并完成订单
func (o *Order) VerifyAndComplete(now time.Time) error {
	if o.PaymentMethod != PaymentPayNow {
		return ErrWrongPaymentMethod
	}
	if o.Status == StatusCompleted {
		return ErrOrderAlreadyCompleted
	}
	o.PaymentStatus = PaymentStatusPaid
	o.Status = StatusCompleted
	o.UpdatedAt = now
	return nil
}

// CalculateTotal 按明细计算总金额
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
