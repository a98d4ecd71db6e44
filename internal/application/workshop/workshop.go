package workshop

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/workshop"
	"github.com/xiebiao/cafe/pkg/clock"
	"github.com/xiebiao/cafe/pkg/metrics"
)

// TxManager 事务管理器
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// WorkshopUseCase 工作坊列表与报名
type WorkshopUseCase struct {
	repo      workshop.Repository
	txManager TxManager
	clock     clock.Clock
	logger    *zap.Logger
}

// NewWorkshopUseCase 创建工作坊用例
func NewWorkshopUseCase(repo workshop.Repository, txManager TxManager, clk clock.Clock, logger *zap.Logger) *WorkshopUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkshopUseCase{repo: repo, txManager: txManager, clock: clk, logger: logger}
}

// WorkshopDTO 工作坊响应
type WorkshopDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	TotalSeats  int       `json:"totalSeats"`
	SeatsLeft   int       `json:"seatsLeft"`
	Tags        []string  `json:"tags"`
}

// RegistrationDTO 报名记录响应
type RegistrationDTO struct {
	ID            uint      `json:"id"`
	WorkshopID    uint      `json:"workshopId"`
	WorkshopTitle string    `json:"workshopTitle"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RegisterRequest 报名请求
type RegisterRequest struct {
	WorkshopID uint
	Name       string
	Phone      string
	Email      string
}

// List 按日期升序列出工作坊
func (uc *WorkshopUseCase) List(ctx context.Context) ([]*WorkshopDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToWorkshopDTOs(list), nil
}

// ToWorkshopDTOs 实体 → 响应,热门榜也用它
func ToWorkshopDTOs(list []*workshop.Workshop) []*WorkshopDTO {
	out := make([]*WorkshopDTO, len(list))
	for i, w := range list {
		out[i] = &WorkshopDTO{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
			Date:        w.Date,
			TotalSeats:  w.TotalSeats,
			SeatsLeft:   w.SeatsLeft(),
			Tags:        w.Tags,
		}
	}
	return out
}

// Register 报名
// 教学要点:和下单防超卖一样,先SELECT ... FOR UPDATE锁定工作坊行,
// 再判断名额、加人数、写报名记录,最后COMMIT释放锁
func (uc *WorkshopUseCase) Register(ctx context.Context, req RegisterRequest) (*RegistrationDTO, error) {
	name, phone := strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone)
	if req.WorkshopID == 0 || name == "" || phone == "" {
		return nil, workshop.ErrMissingFields
	}

	var reg *workshop.Registration
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		w, err := uc.repo.LockByID(txCtx, req.WorkshopID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := w.Reserve(now); err != nil {
			return err
		}
		if err := uc.repo.UpdateRegisteredCount(txCtx, w); err != nil {
			return err
		}

		reg = workshop.NewRegistration(w, name, phone, strings.TrimSpace(req.Email), now)
		return uc.repo.CreateRegistration(txCtx, reg)
	})
	if err != nil {
		if errors.Is(err, workshop.ErrNoSeatsLeft) {
			metrics.IncCounterVec(metrics.WorkshopRegistrationsTotal, "full")
		}
		return nil, err
	}

	metrics.IncCounterVec(metrics.WorkshopRegistrationsTotal, "confirmed")
	uc.logger.Info("workshop registration confirmed",
		zap.Uint("workshop_id", reg.WorkshopID),
		zap.Uint("registration_id", reg.ID),
	)
	return toRegistrationDTO(reg), nil
}

// ListRegistrations 管理端报名列表,按报名时间倒序
func (uc *WorkshopUseCase) ListRegistrations(ctx context.Context) ([]*RegistrationDTO, error) {
	list, err := uc.repo.ListRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*RegistrationDTO, len(list))
	for i, r := range list {
		out[i] = toRegistrationDTO(r)
	}
	return out, nil
}

func toRegistrationDTO(r *workshop.Registration) *RegistrationDTO {
	return &RegistrationDTO{
		ID:            r.ID,
		WorkshopID:    r.WorkshopID,
		WorkshopTitle: r.WorkshopTitle,
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}
