package service

import (
	"fmt"
	"time"

	"github.com/harber-marketplace/harber-client/internal/models"
	"github.com/harber-marketplace/harber-client/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务（结算消费购物车）
type OrderService struct {
	orderRepo repository.OrderRepository
	cartSvc   *CartService
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartSvc *CartService) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartSvc:   cartSvc,
	}
}

// CreateFromCart 以当前购物车创建订单并清空购物车
func (s *OrderService) CreateFromCart(userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	entries, err := s.cartSvc.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrCartEmpty
	}

	now := time.Now()
	total := decimal.Zero
	sellerID := uint(0)
	items := make([]models.OrderItem, 0, len(entries))
	for _, entry := range entries {
		product := entry.Product
		if product == nil {
			return nil, ErrProductNotAvailable
		}
		if sellerID == 0 {
			sellerID = product.SellerID
		}
		line := product.PriceAmount.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		total = total.Add(line)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.PriceAmount,
			Quantity:    entry.Quantity,
			CreatedAt:   now,
		})
	}

	order := &models.Order{
		OrderNo:     newOrderNo(now),
		UserID:      userID,
		SellerID:    sellerID,
		TotalAmount: models.NewMoneyFromDecimal(total),
		Status:      models.OrderStatusPendingPayment,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       items,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByNo 按订单号查询
func (s *OrderService) GetByNo(userID uint, orderNo string) (*models.Order, error) {
	if userID == 0 || orderNo == "" {
		return nil, ErrInvalidCartItem
	}
	return s.orderRepo.GetByNo(userID, orderNo)
}

// ListByUser 查询用户订单
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	return s.orderRepo.ListByUser(userID)
}

func newOrderNo(now time.Time) string {
	return fmt.Sprintf("HB%s-%s", now.Format("20060102150405"), uuid.NewString()[:8])
}
