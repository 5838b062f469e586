package service

import (
	"errors"
	"testing"

	"github.com/harber-marketplace/harber-client/internal/repository"

	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cartSvc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	orderSvc := NewOrderService(repository.NewOrderRepository(db), cartSvc)
	return orderSvc, cartSvc, db
}

func TestCreateFromCart(t *testing.T) {
	orderSvc, cartSvc, db := newOrderService(t)
	product := seedProduct(t, db, 1, "keripik", 10)
	if _, err := cartSvc.AddItem(100, product.ID, 3); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	order, err := orderSvc.CreateFromCart(100)
	if err != nil {
		t.Fatalf("CreateFromCart failed: %v", err)
	}
	if order.OrderNo == "" {
		t.Fatal("order number must be assigned")
	}
	if order.SellerID != 1 {
		t.Fatalf("expected seller 1, got %d", order.SellerID)
	}
	if got := order.TotalAmount.String(); got != "45000.00" {
		t.Fatalf("expected total 45000.00, got %s", got)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 3 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}

	// 下单后购物车被清空
	entries, err := cartSvc.ListByUser(100)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("cart must be emptied after checkout, got %+v", entries)
	}
}

func TestCreateFromEmptyCart(t *testing.T) {
	orderSvc, _, _ := newOrderService(t)
	if _, err := orderSvc.CreateFromCart(100); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestGetByNo(t *testing.T) {
	orderSvc, cartSvc, db := newOrderService(t)
	product := seedProduct(t, db, 1, "keripik", 10)
	if _, err := cartSvc.AddItem(100, product.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	created, err := orderSvc.CreateFromCart(100)
	if err != nil {
		t.Fatalf("CreateFromCart failed: %v", err)
	}

	found, err := orderSvc.GetByNo(100, created.OrderNo)
	if err != nil {
		t.Fatalf("GetByNo failed: %v", err)
	}
	if found == nil || found.OrderNo != created.OrderNo {
		t.Fatalf("unexpected order: %+v", found)
	}

	// 其他用户不可见
	other, err := orderSvc.GetByNo(200, created.OrderNo)
	if err != nil {
		t.Fatalf("GetByNo for other user failed: %v", err)
	}
	if other != nil {
		t.Fatalf("order must not leak across users, got %+v", other)
	}
}
