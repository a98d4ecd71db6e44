package franchise

import (
	"strings"
	"time"
)

// Status 跟进状态
type Status string

const (
	StatusNew       Status = "NEW"
	StatusContacted Status = "CONTACTED"
)

// Valid 是否为合法状态
func (s Status) Valid() bool {
	return s == StatusNew || s == StatusContacted
}

// Enquiry 加盟咨询
type Enquiry struct {
	ID              uint
	FullName        string
	Phone           string
	Email           string
	City            string
	InvestmentRange string
	Message         string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewEnquiry 创建咨询,姓名、电话、城市必填
func NewEnquiry(fullName, phone, email, city, investmentRange, message string, now time.Time) (*Enquiry, error) {
	fullName, phone, city = strings.TrimSpace(fullName), strings.TrimSpace(phone), strings.TrimSpace(city)
	if fullName == "" || phone == "" || city == "" {
		return nil, ErrMissingFields
	}
	return &Enquiry{
		FullName:        fullName,
		Phone:           phone,
		Email:           email,
		City:            city,
		InvestmentRange: investmentRange,
		Message:         message,
		Status:          StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
