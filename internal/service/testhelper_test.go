package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ledgerFixture struct {
	db       *gorm.DB
	orders   *OrderService
	payments *PaymentService
	refunds  *RefundService
	shipping *ShippingService
	catalog  *CatalogService
	history  repository.OrderStatusHistoryRepository
}

func openServiceTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.MigrationModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newLedgerFixture(t *testing.T, name string) *ledgerFixture {
	t.Helper()
	db := openServiceTestDB(t, name)
	return newLedgerFixtureWithHistory(db, repository.NewOrderStatusHistoryRepository(db))
}

func newLedgerFixtureWithHistory(db *gorm.DB, history repository.OrderStatusHistoryRepository) *ledgerFixture {
	orderRepo := repository.NewOrderRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	return &ledgerFixture{
		db: db,
		orders: NewOrderService(
			db,
			orderRepo,
			repository.NewOrderItemRepository(db),
			history,
			repository.NewShippingAddressRepository(db),
			repository.NewUserRepository(db),
			categoryRepo,
			nil,
		),
		payments: NewPaymentService(db, orderRepo, repository.NewPaymentRepository(db)),
		refunds:  NewRefundService(db, orderRepo, repository.NewRefundRepository(db)),
		shipping: NewShippingService(db, orderRepo, repository.NewShippingAddressRepository(db)),
		catalog:  NewCatalogService(categoryRepo, time.Minute),
		history:  history,
	}
}

func seedServiceUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func seedServiceVariant(t *testing.T, db *gorm.DB, sku string) models.ProductVariant {
	t.Helper()
	category := models.Category{Slug: "cat-" + sku, Name: "Category " + sku}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	variant := models.ProductVariant{CategoryID: category.ID, SKU: sku, Name: "Variant " + sku}
	if err := db.Create(&variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

func money(value string) models.Money {
	return models.NewMoneyFromDecimal(decimal.RequireFromString(value))
}

func statusesOf(entries []models.OrderStatusHistory) []string {
	statuses := make([]string, 0, len(entries))
	for _, entry := range entries {
		statuses = append(statuses, entry.Status)
	}
	return statuses
}

func sampleAddress() ShippingAddressInput {
	return ShippingAddressInput{
		FullName:     "Grace Hopper",
		AddressLine1: "1 Navy Way",
		City:         "Arlington",
		State:        "VA",
		PostalCode:   "22202",
		Country:      "US",
		PhoneNumber:  "555-0199",
	}
}
