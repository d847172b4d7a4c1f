package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/order-ledger/internal/cache"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/repository"

	"github.com/gosimple/slug"
)

// CatalogReader 只读商品目录接口，订单核心不依赖它
type CatalogReader interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// CatalogService 商品目录服务（分类列表带 Redis 缓存）
type CatalogService struct {
	repo     repository.CategoryRepository
	cacheTTL time.Duration
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(repo repository.CategoryRepository, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{repo: repo, cacheTTL: cacheTTL}
}

// ListCategories 返回全部分类（不做任何过滤）
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if cached, hit, err := cache.GetCatalogCategories(ctx); err != nil {
		logger.Warnw("catalog_cache_get_failed", "error", err)
	} else if hit {
		return cached, nil
	}
	categories, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	if err := cache.SetCatalogCategories(ctx, categories, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_set_failed", "error", err)
	}
	return categories, nil
}

// CreateCategoryInput 创建分类输入
type CreateCategoryInput struct {
	Name      string
	Slug      string
	SortOrder int
}

// CreateCategory 创建分类，未指定 slug 时由名称生成
func (s *CatalogService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	name, err := requireString("name", input.Name, 120)
	if err != nil {
		return nil, err
	}
	categorySlug := strings.TrimSpace(input.Slug)
	if categorySlug == "" {
		categorySlug = slug.Make(name)
	}
	if !slug.IsSlug(categorySlug) {
		return nil, fmt.Errorf("%w: slug", ErrFieldRequired)
	}
	existing, err := s.repo.GetBySlug(categorySlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	category := &models.Category{Slug: categorySlug, Name: name, SortOrder: input.SortOrder}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	if err := cache.InvalidateCatalogCategories(ctx); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "error", err)
	}
	return category, nil
}

// CreateVariantInput 创建商品规格输入
type CreateVariantInput struct {
	CategoryID uint
	SKU        string
	Name       string
}

// CreateVariant 创建商品规格，未指定 SKU 时由名称生成
func (s *CatalogService) CreateVariant(input CreateVariantInput) (*models.ProductVariant, error) {
	name, err := requireString("name", input.Name, 255)
	if err != nil {
		return nil, err
	}
	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		sku = strings.ToUpper(slug.Make(name))
	}
	variant := &models.ProductVariant{CategoryID: input.CategoryID, SKU: sku, Name: name}
	if err := s.repo.CreateVariant(variant); err != nil {
		return nil, err
	}
	return variant, nil
}
