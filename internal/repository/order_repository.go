package repository

import (
	"errors"

	"github.com/harber-marketplace/harber-client/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByNo(userID uint, orderNo string) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create 新增订单（含明细）
func (r *GormOrderRepository) Create(order *models.Order) error {
	if order == nil {
		return nil
	}
	return r.db.Create(order).Error
}

// GetByNo 按订单号查询
func (r *GormOrderRepository) GetByNo(userID uint, orderNo string) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items").
		Where("user_id = ? AND order_no = ?", userID, orderNo).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser 查询用户订单
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Transaction 在事务中执行
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
