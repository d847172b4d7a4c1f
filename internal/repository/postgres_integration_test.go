//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.Refund{},
		&models.ShippingAddress{},
		&models.Payment{},
		&models.OrderStatusHistory{},
		&models.OrderItem{},
		&models.Order{},
		&models.ProductVariant{},
		&models.Category{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(models.MigrationModels()...); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresOrderSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	user := seedUser(t, db, "PgAlice")
	order := seedOrder(t, db, user.ID, "aaaaaaaa-0000-4000-8000-000000000001", constants.OrderStatusPending, time.Now())

	rows, total, err := NewOrderRepository(db).ListAdmin(adminsite.NewDefaultRegistry().MustGet(adminsite.EntityOrder), AdminListFilter{Search: "pgalice"})
	if err != nil {
		t.Fatalf("list admin failed: %v", err)
	}
	if total != 1 || rows[0].ID != order.ID {
		t.Fatalf("expected ILIKE match, total=%d", total)
	}
}

func TestPostgresGetForUpdateInsideTransaction(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	user := seedUser(t, db, "pg_lock")
	order := seedOrder(t, db, user.ID, "aaaaaaaa-0000-4000-8000-000000000002", constants.OrderStatusPending, time.Now())

	err := db.Transaction(func(tx *gorm.DB) error {
		locked, err := NewOrderRepository(db).WithTx(tx).GetForUpdate(order.ID)
		if err != nil {
			return err
		}
		if locked == nil || locked.Status != constants.OrderStatusPending {
			t.Fatalf("unexpected locked row: %+v", locked)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}
}
