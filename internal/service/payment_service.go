package service

import (
	"context"
	"fmt"
	"time"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/repository"

	"gorm.io/gorm"
)

// PaymentService 支付记录服务（仅记账，不对接支付网关）
type PaymentService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
}

// NewPaymentService 创建支付记录服务
func NewPaymentService(db *gorm.DB, orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository) *PaymentService {
	return &PaymentService{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

// RecordPaymentInput 记录支付输入
type RecordPaymentInput struct {
	Method        string
	Amount        models.Money
	Status        string
	TransactionID *string
}

// UpdatePaymentInput 更新支付输入，nil 字段保持不变
type UpdatePaymentInput struct {
	Status        *string
	TransactionID *string
}

// RecordPayment 为订单记录一笔支付，payment_date 在此写入且不再变更
func (s *PaymentService) RecordPayment(ctx context.Context, orderID uint, input RecordPaymentInput) (*models.Payment, error) {
	method, err := normalizePaymentMethod(input.Method)
	if err != nil {
		return nil, err
	}
	status, err := normalizePaymentStatus(input.Status)
	if err != nil {
		return nil, err
	}
	if err := validateAmount("amount", input.Amount); err != nil {
		return nil, err
	}
	transactionID, err := optionalString("transaction_id", input.TransactionID, constants.MaxTransactionIDLength)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		OrderID:       orderID,
		Method:        method,
		Amount:        input.Amount,
		Status:        status,
		TransactionID: transactionID,
		PaymentDate:   time.Now(),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.WithTx(tx).GetByID(orderID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		if order == nil {
			return ErrOrderNotFound
		}
		return s.paymentRepo.WithTx(tx).Create(payment)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("payment_recorded",
		"order_id", orderID,
		"payment_id", payment.ID,
		"method", payment.Method,
		"status", payment.Status,
	)
	return payment, nil
}

// UpdatePayment 更新支付状态与流水号
func (s *PaymentService) UpdatePayment(ctx context.Context, id uint, input UpdatePaymentInput) (*models.Payment, error) {
	var saved *models.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		paymentRepo := s.paymentRepo.WithTx(tx)
		payment, err := paymentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		if input.Status != nil {
			status, err := normalizePaymentStatus(*input.Status)
			if err != nil {
				return err
			}
			payment.Status = status
		}
		if input.TransactionID != nil {
			transactionID, err := optionalString("transaction_id", input.TransactionID, constants.MaxTransactionIDLength)
			if err != nil {
				return err
			}
			payment.TransactionID = transactionID
		}
		if err := paymentRepo.Update(payment); err != nil {
			return err
		}
		saved = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListPayments 列出订单的支付记录
func (s *PaymentService) ListPayments(orderID uint) ([]models.Payment, error) {
	return s.paymentRepo.ListByOrder(orderID)
}

// ListPaymentsAdmin 后台支付记录列表
func (s *PaymentService) ListPaymentsAdmin(view adminsite.ModelAdmin, filter repository.AdminListFilter) ([]models.Payment, int64, error) {
	return s.paymentRepo.ListAdmin(view, filter)
}
