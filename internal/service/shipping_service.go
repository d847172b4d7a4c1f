package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/repository"

	"gorm.io/gorm"
)

// ShippingService 收货地址服务
type ShippingService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	addressRepo repository.ShippingAddressRepository
}

// NewShippingService 创建收货地址服务
func NewShippingService(db *gorm.DB, orderRepo repository.OrderRepository, addressRepo repository.ShippingAddressRepository) *ShippingService {
	return &ShippingService{
		db:          db,
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
	}
}

// ShippingAddressInput 收货地址输入
type ShippingAddressInput struct {
	FullName     string
	AddressLine1 string
	AddressLine2 *string
	City         string
	State        string
	PostalCode   string
	Country      string
	PhoneNumber  string
}

func (in ShippingAddressInput) toModel() *models.ShippingAddress {
	return &models.ShippingAddress{
		FullName:     in.FullName,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		PhoneNumber:  in.PhoneNumber,
	}
}

// AttachShippingAddress 为订单写入收货地址，每个订单至多一个
func (s *ShippingService) AttachShippingAddress(ctx context.Context, orderID uint, input ShippingAddressInput) (*models.ShippingAddress, error) {
	address := input.toModel()
	if err := normalizeShippingAddress(address); err != nil {
		return nil, err
	}
	address.OrderID = orderID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.WithTx(tx).GetForUpdate(orderID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		if order == nil {
			return ErrOrderNotFound
		}
		addressRepo := s.addressRepo.WithTx(tx)
		existing, err := addressRepo.GetByOrder(orderID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrShippingAddressExists
		}
		if err := addressRepo.Create(address); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %w", ErrShippingAddressExists, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// UpdateShippingAddress 更新收货地址字段
func (s *ShippingService) UpdateShippingAddress(ctx context.Context, id uint, input ShippingAddressInput) (*models.ShippingAddress, error) {
	next := input.toModel()
	if err := normalizeShippingAddress(next); err != nil {
		return nil, err
	}
	var saved *models.ShippingAddress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		addressRepo := s.addressRepo.WithTx(tx)
		current, err := addressRepo.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrShippingAddressNotFound
		}
		next.ID = current.ID
		next.OrderID = current.OrderID
		if err := addressRepo.Update(next); err != nil {
			return err
		}
		saved = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetShippingAddress 获取订单的收货地址
func (s *ShippingService) GetShippingAddress(orderID uint) (*models.ShippingAddress, error) {
	address, err := s.addressRepo.GetByOrder(orderID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrShippingAddressNotFound
	}
	return address, nil
}

// ListShippingAddressesAdmin 后台收货地址列表
func (s *ShippingService) ListShippingAddressesAdmin(view adminsite.ModelAdmin, filter repository.AdminListFilter) ([]models.ShippingAddress, int64, error) {
	return s.addressRepo.ListAdmin(view, filter)
}
