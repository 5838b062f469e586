package repository

import (
	"errors"
	"strings"

	"github.com/harber-marketplace/harber-client/internal/models"

	"gorm.io/gorm"
)

// ProductQuery 商品列表查询条件
type ProductQuery struct {
	CategoryID uint
	SellerID   uint
	Keyword    string
}

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(query ProductQuery) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 查询上架商品
func (r *GormProductRepository) List(query ProductQuery) ([]models.Product, error) {
	tx := r.db.
		Preload("Seller").
		Preload("Category").
		Where("is_active = ?", true)
	if query.CategoryID > 0 {
		tx = tx.Where("category_id = ?", query.CategoryID)
	}
	if query.SellerID > 0 {
		tx = tx.Where("seller_id = ?", query.SellerID)
	}
	if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
		tx = tx.Where("name LIKE ?", "%"+keyword+"%")
	}
	var products []models.Product
	if err := tx.Order("sort_order desc, id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 按主键查询商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Seller").
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create 新增商品
func (r *GormProductRepository) Create(product *models.Product) error {
	if product == nil {
		return nil
	}
	return r.db.Create(product).Error
}
