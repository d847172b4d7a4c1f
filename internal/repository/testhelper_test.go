package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/order-ledger/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.MigrationModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func seedVariant(t *testing.T, db *gorm.DB, sku, name string) models.ProductVariant {
	t.Helper()
	category := models.Category{Slug: "cat-" + sku, Name: "Category " + sku}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	variant := models.ProductVariant{CategoryID: category.ID, SKU: sku, Name: name}
	if err := db.Create(&variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, orderID, status string, createdAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		OrderNo:     orderID,
		UserID:      userID,
		Status:      status,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}
