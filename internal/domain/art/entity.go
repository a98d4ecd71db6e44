// Package art 店内艺术品展示与预订
package art

import (
	"strings"
	"time"
)

// Availability 艺术品状态
// 按字典序排列正好是 available < reserved < sold,列表按它升序
type Availability string

const (
	Available Availability = "available"
	Reserved  Availability = "reserved"
	Sold      Availability = "sold"
)

// Art 艺术品
type Art struct {
	ID           uint
	Title        string
	ArtistName   string
	Description  string
	Price        int64 // 分
	ImageURL     string
	Availability Availability
	MoodTags     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reserve 接受预订后标记为已预订,已售出的不能预订
// 教学要点:调用方必须先用LockByID锁定该行
func (a *Art) Reserve(now time.Time) error {
	if a.Availability == Sold {
		return ErrArtSold
	}
	a.Availability = Reserved
	a.UpdatedAt = now
	return nil
}

// Release 已预订的恢复为可预订,其他状态不变
// 返回是否发生了变化
func (a *Art) Release(now time.Time) bool {
	if a.Availability != Reserved {
		return false
	}
	a.Availability = Available
	a.UpdatedAt = now
	return true
}

// BookingStatus 预订申请状态
type BookingStatus string

const (
	BookingPending  BookingStatus = "PENDING"
	BookingAccepted BookingStatus = "ACCEPTED"
	BookingRejected BookingStatus = "REJECTED"
)

// Booking 预订申请
// ArtName冗余保存申请时的作品名
type Booking struct {
	ID        uint
	ArtID     uint
	ArtName   string
	UserName  string
	Phone     string
	Email     string
	Message   string
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking 创建待处理的预订申请
// 姓名和电话必填;已售出的作品不接受申请
func NewBooking(a *Art, userName, phone, email, message string, now time.Time) (*Booking, error) {
	userName, phone = strings.TrimSpace(userName), strings.TrimSpace(phone)
	if userName == "" || phone == "" {
		return nil, ErrMissingFields
	}
	if a.Availability == Sold {
		return nil, ErrArtSold
	}
	return &Booking{
		ArtID:     a.ID,
		ArtName:   a.Title,
		UserName:  userName,
		Phone:     phone,
		Email:     strings.TrimSpace(email),
		Message:   message,
		Status:    BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Accept 接受申请
func (b *Booking) Accept(now time.Time) {
	b.Status = BookingAccepted
	b.UpdatedAt = now
}

// Reject 拒绝申请
func (b *Booking) Reject(now time.Time) {
	b.Status = BookingRejected
	b.UpdatedAt = now
}
