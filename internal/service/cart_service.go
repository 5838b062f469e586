package service

import (
	"time"

	"github.com/harber-marketplace/harber-client/internal/models"
	"github.com/harber-marketplace/harber-client/internal/repository"
)

// CartService 购物车服务（权威端：单卖家规则在此强制执行）
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车（含商品快照）
func (s *CartService) ListByUser(userID uint) ([]models.CartEntry, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	entries, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	kept := make([]models.CartEntry, 0, len(entries))
	for _, entry := range entries {
		// 商品下架后对应购物车项直接剔除
		if entry.Product == nil || !entry.Product.IsActive {
			_ = s.cartRepo.DeleteByID(userID, entry.ID)
			continue
		}
		kept = append(kept, entry)
	}
	return kept, nil
}

// AddItem 添加商品到购物车
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartEntry, error) {
	if userID == 0 || productID == 0 || quantity <= 0 {
		return nil, ErrInvalidCartItem
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	if err := s.checkSameSeller(userID, product.SellerID); err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		next := existing.Quantity + quantity
		if product.Stock > 0 && next > product.Stock {
			return nil, ErrStockExceeded
		}
		if err := s.cartRepo.UpdateQuantity(existing.ID, next); err != nil {
			return nil, err
		}
		existing.Quantity = next
		return existing, nil
	}

	if product.Stock > 0 && quantity > product.Stock {
		return nil, ErrStockExceeded
	}
	now := time.Now()
	entry := &models.CartEntry{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Increase 数量加一（单步，不按差值循环）
func (s *CartService) Increase(userID, entryID uint) (*models.CartEntry, error) {
	entry, err := s.getOwnedEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Product != nil && entry.Product.Stock > 0 && entry.Quantity+1 > entry.Product.Stock {
		return nil, ErrStockExceeded
	}
	entry.Quantity++
	if err := s.cartRepo.UpdateQuantity(entry.ID, entry.Quantity); err != nil {
		return nil, err
	}
	return entry, nil
}

// Decrease 数量减一（减到 0 即删除，购物车不保留 0 数量项）
func (s *CartService) Decrease(userID, entryID uint) (*models.CartEntry, error) {
	entry, err := s.getOwnedEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Quantity <= 1 {
		if err := s.cartRepo.DeleteByID(userID, entry.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	entry.Quantity--
	if err := s.cartRepo.UpdateQuantity(entry.ID, entry.Quantity); err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove 删除购物车项（幂等：不存在也视为成功）
func (s *CartService) Remove(userID, entryID uint) error {
	if userID == 0 || entryID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.DeleteByID(userID, entryID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearByUser(userID)
}

// checkSameSeller 校验新增商品与现有购物车同属一个卖家
func (s *CartService) checkSameSeller(userID, sellerID uint) error {
	entries, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Product == nil {
			continue
		}
		if entry.Product.SellerID != sellerID {
			return ErrDifferentSeller
		}
	}
	return nil
}

func (s *CartService) getOwnedEntry(userID, entryID uint) (*models.CartEntry, error) {
	if userID == 0 || entryID == 0 {
		return nil, ErrInvalidCartItem
	}
	entry, err := s.cartRepo.GetByID(userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrCartEntryNotFound
	}
	return entry, nil
}
