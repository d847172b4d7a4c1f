package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/order-ledger/internal/logger"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var DB *gorm.DB

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// DBOptions 数据库初始化参数
type DBOptions struct {
	Driver             string
	DSN                string
	Replicas           []string // 只读副本 DSN，与主库同驱动
	Pool               DBPoolConfig
	LogLevel           string
	SlowQueryThreshold time.Duration
}

// InitDB 初始化数据库连接
func InitDB(options DBOptions) error {
	db, err := OpenDB(options)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// OpenDB 打开数据库连接并注册读写分离
func OpenDB(options DBOptions) (*gorm.DB, error) {
	dialector, err := openDialector(options.Driver, options.DSN)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(options.LogLevel, options.SlowQueryThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := registerReplicas(db, options); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyDBPool(sqlDB, options.Pool)
	return db, nil
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch normalizeDriver(driver) {
	case "sqlite":
		// glebarez/sqlite 是基于 modernc.org/sqlite 的纯 Go 驱动
		return sqlite.Open(withSQLiteForeignKeys(dsn)), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func normalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return "sqlite"
	case "postgres", "postgresql":
		return "postgres"
	case "mysql":
		return "mysql"
	default:
		return strings.ToLower(strings.TrimSpace(driver))
	}
}

// withSQLiteForeignKeys 为 sqlite 连接开启外键约束（级联删除依赖它）
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "_pragma=foreign_keys(1)"
}

// registerReplicas 注册只读副本；显式使用 dbresolver.Write 的查询始终落在主库
func registerReplicas(db *gorm.DB, options DBOptions) error {
	replicas := make([]gorm.Dialector, 0, len(options.Replicas))
	for _, dsn := range options.Replicas {
		if strings.TrimSpace(dsn) == "" {
			continue
		}
		dialector, err := openDialector(options.Driver, dsn)
		if err != nil {
			return err
		}
		replicas = append(replicas, dialector)
	}
	if len(replicas) == 0 {
		return nil
	}
	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return fmt.Errorf("register db replicas failed: %w", err)
	}
	logger.Infow("db_replicas_registered", "count", len(replicas))
	return nil
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

// MigrationModels 返回需要迁移的全部模型（外部实体在前）
func MigrationModels() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&ProductVariant{},
		&Order{},
		&OrderItem{},
		&OrderStatusHistory{},
		&Payment{},
		&ShippingAddress{},
		&Refund{},
	}
}

// AutoMigrate 自动迁移所有数据库表
func AutoMigrate() error {
	return DB.AutoMigrate(MigrationModels()...)
}
