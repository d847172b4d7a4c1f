package cache

import (
	"context"
	"time"

	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/models"
)

const defaultCatalogCacheTTL = time.Minute

// GetCatalogCategories 读取分类列表缓存
func GetCatalogCategories(ctx context.Context) ([]models.Category, bool, error) {
	var categories []models.Category
	hit, err := getJSON(ctx, constants.CacheKeyCatalogCategories, &categories)
	if err != nil || !hit {
		return nil, false, err
	}
	return categories, true, nil
}

// SetCatalogCategories 写入分类列表缓存
func SetCatalogCategories(ctx context.Context, categories []models.Category, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultCatalogCacheTTL
	}
	return setJSON(ctx, constants.CacheKeyCatalogCategories, categories, ttl)
}

// InvalidateCatalogCategories 删除分类列表缓存
func InvalidateCatalogCategories(ctx context.Context) error {
	return del(ctx, constants.CacheKeyCatalogCategories)
}
