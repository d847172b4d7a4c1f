package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/repository"

	"gorm.io/gorm"
)

// RefundService 退款记录服务
type RefundService struct {
	db         *gorm.DB
	orderRepo  repository.OrderRepository
	refundRepo repository.RefundRepository
}

// NewRefundService 创建退款记录服务
func NewRefundService(db *gorm.DB, orderRepo repository.OrderRepository, refundRepo repository.RefundRepository) *RefundService {
	return &RefundService{
		db:         db,
		orderRepo:  orderRepo,
		refundRepo: refundRepo,
	}
}

// CreateRefundInput 创建退款输入
type CreateRefundInput struct {
	Amount        models.Money
	Reason        string
	TransactionID *string
}

// UpdateRefundInput 更新退款输入，nil 字段保持不变
type UpdateRefundInput struct {
	Reason        *string
	Status        *string
	TransactionID *string
}

// CreateRefund 创建退款申请，状态固定为 pending
func (s *RefundService) CreateRefund(ctx context.Context, orderID uint, input CreateRefundInput) (*models.Refund, error) {
	if err := validateAmount("amount", input.Amount); err != nil {
		return nil, err
	}
	reason, err := requireString("reason", input.Reason, 0)
	if err != nil {
		return nil, err
	}
	transactionID, err := optionalString("transaction_id", input.TransactionID, constants.MaxTransactionIDLength)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	refund := &models.Refund{
		OrderID:       orderID,
		Amount:        input.Amount,
		Reason:        reason,
		Status:        constants.RefundStatusPending,
		TransactionID: transactionID,
		RefundDate:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.WithTx(tx).GetByID(orderID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		if order == nil {
			return ErrOrderNotFound
		}
		return s.refundRepo.WithTx(tx).Create(refund)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("refund_created",
		"order_id", orderID,
		"refund_id", refund.ID,
		"amount", refund.Amount.String(),
	)
	return refund, nil
}

// UpdateRefund 更新退款状态、原因或流水号；refund_date 保持创建时的值
func (s *RefundService) UpdateRefund(ctx context.Context, id uint, input UpdateRefundInput) (*models.Refund, error) {
	var saved *models.Refund
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refundRepo := s.refundRepo.WithTx(tx)
		refund, err := refundRepo.GetByID(id)
		if err != nil {
			return err
		}
		if refund == nil {
			return ErrRefundNotFound
		}
		if input.Reason != nil {
			reason, err := requireString("reason", *input.Reason, 0)
			if err != nil {
				return err
			}
			refund.Reason = reason
		}
		if input.Status != nil {
			if strings.TrimSpace(*input.Status) == "" {
				return fmt.Errorf("%w: status", ErrFieldRequired)
			}
			status, err := normalizeRefundStatus(*input.Status)
			if err != nil {
				return err
			}
			refund.Status = status
		}
		if input.TransactionID != nil {
			transactionID, err := optionalString("transaction_id", input.TransactionID, constants.MaxTransactionIDLength)
			if err != nil {
				return err
			}
			refund.TransactionID = transactionID
		}
		refund.UpdatedAt = time.Now()
		if err := refundRepo.Update(refund); err != nil {
			return err
		}
		saved = refund
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("refund_updated",
		"refund_id", saved.ID,
		"order_id", saved.OrderID,
		"status", saved.Status,
	)
	return saved, nil
}

// ListRefunds 列出订单的退款记录
func (s *RefundService) ListRefunds(orderID uint) ([]models.Refund, error) {
	return s.refundRepo.ListByOrder(orderID)
}

// ListRefundsAdmin 后台退款记录列表
func (s *RefundService) ListRefundsAdmin(view adminsite.ModelAdmin, filter repository.AdminListFilter) ([]models.Refund, int64, error) {
	return s.refundRepo.ListAdmin(view, filter)
}
