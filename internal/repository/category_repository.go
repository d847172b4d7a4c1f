package repository

import (
	"github.com/order-ledger/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 商品目录数据访问接口
type CategoryRepository interface {
	List() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
	GetVariantByID(id uint) (*models.ProductVariant, error)
	CreateVariant(variant *models.ProductVariant) error
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 列出全部分类
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order DESC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetBySlug 根据 slug 获取分类
func (r *GormCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	return firstOrNil[models.Category](r.db.Where("slug = ?", slug))
}

// Create 创建分类
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetVariantByID 根据 ID 获取商品规格
func (r *GormCategoryRepository) GetVariantByID(id uint) (*models.ProductVariant, error) {
	return firstOrNil[models.ProductVariant](r.db, id)
}

// CreateVariant 创建商品规格
func (r *GormCategoryRepository) CreateVariant(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}
