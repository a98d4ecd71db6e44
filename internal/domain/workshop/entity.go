package workshop

import (
	"time"
)

// Workshop 咖啡工作坊
type Workshop struct {
	ID              uint
	Title           string
	Description     string
	Date            time.Time
	TotalSeats      int
	RegisteredCount int
	Tags            []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SeatsLeft 剩余名额,不会为负
func (w *Workshop) SeatsLeft() int {
	return max(w.TotalSeats-w.RegisteredCount, 0)
}

// Reserve 占用一个名额
// 教学要点:调用方必须先用LockByID锁定该行,否则并发报名可能超员
func (w *Workshop) Reserve(now time.Time) error {
	if w.SeatsLeft() <= 0 {
		return ErrNoSeatsLeft
	}
	w.RegisteredCount++
	w.UpdatedAt = now
	return nil
}

// RegistrationStatus 报名状态
type RegistrationStatus string

const RegistrationConfirmed RegistrationStatus = "CONFIRMED"

// Registration 报名记录
// WorkshopTitle冗余保存报名时的标题
type Registration struct {
	ID            uint
	WorkshopID    uint
	WorkshopTitle string
	Name          string
	Phone         string
	Email         string
	Status        RegistrationStatus
	CreatedAt     time.Time
}

// NewRegistration 创建已确认的报名记录
func NewRegistration(w *Workshop, name, phone, email string, now time.Time) *Registration {
	return &Registration{
		WorkshopID:    w.ID,
		WorkshopTitle: w.Title,
		Name:          name,
		Phone:         phone,
		Email:         email,
		Status:        RegistrationConfirmed,
		CreatedAt:     now,
	}
}
