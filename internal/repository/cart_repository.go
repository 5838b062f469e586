package repository

import (
	"errors"

	"github.com/harber-marketplace/harber-client/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartEntry, error)
	GetByID(userID, entryID uint) (*models.CartEntry, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartEntry, error)
	Create(entry *models.CartEntry) error
	UpdateQuantity(entryID uint, quantity int) error
	DeleteByID(userID, entryID uint) error
	ClearByUser(userID uint) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ListByUser 获取用户购物车项
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	if err := r.db.
		Preload("Product").
		Preload("Product.Seller").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID 按购物车项主键查询
func (r *GormCartRepository) GetByID(userID, entryID uint) (*models.CartEntry, error) {
	var entry models.CartEntry
	err := r.db.
		Preload("Product").
		Preload("Product.Seller").
		Where("user_id = ? AND id = ?", userID, entryID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByUserAndProduct 按用户和商品查询
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartEntry, error) {
	var entry models.CartEntry
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create 新增购物车项
func (r *GormCartRepository) Create(entry *models.CartEntry) error {
	if entry == nil {
		return nil
	}
	return r.db.Create(entry).Error
}

// UpdateQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateQuantity(entryID uint, quantity int) error {
	return r.db.Model(&models.CartEntry{}).Where("id = ?", entryID).Update("quantity", quantity).Error
}

// DeleteByID 删除购物车项
func (r *GormCartRepository) DeleteByID(userID, entryID uint) error {
	return r.db.Where("user_id = ? AND id = ?", userID, entryID).Delete(&models.CartEntry{}).Error
}

// ClearByUser 清空用户购物车
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error
}
