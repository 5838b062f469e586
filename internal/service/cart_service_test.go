package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/harber-marketplace/harber-client/internal/models"
	"github.com/harber-marketplace/harber-client/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := models.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Seller{}, &models.Category{}, &models.Product{}, &models.CartEntry{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID uint, slug string, stock int) *models.Product {
	t.Helper()
	seller := models.Seller{ID: sellerID, ShopName: fmt.Sprintf("Toko %d", sellerID), IsActive: true}
	if err := db.FirstOrCreate(&seller, models.Seller{ID: sellerID}).Error; err != nil {
		t.Fatalf("seed seller failed: %v", err)
	}
	category := models.Category{Slug: slug + "-cat", Name: "Makanan"}
	if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	product := &models.Product{
		SellerID:    sellerID,
		CategoryID:  category.ID,
		Slug:        slug,
		Name:        "Produk " + slug,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(15000)),
		Stock:       stock,
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestAddItemCreatesEntry(t *testing.T) {
	svc, db := newCartService(t)
	product := seedProduct(t, db, 1, "keripik", 10)

	entry, err := svc.AddItem(100, product.ID, 1)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if entry.Quantity != 1 || entry.ProductID != product.ID {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	svc, db := newCartService(t)
	product := seedProduct(t, db, 1, "keripik", 10)

	if _, err := svc.AddItem(100, product.ID, 1); err != nil {
		t.Fatalf("first AddItem failed: %v", err)
	}
	entry, err := svc.AddItem(100, product.ID, 2)
	if err != nil {
		t.Fatalf("second AddItem failed: %v", err)
	}
	if entry.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", entry.Quantity)
	}

	entries, err := svc.ListByUser(100)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected single merged entry, got %d", len(entries))
	}
}

func TestAddItemDifferentSellerRejected(t *testing.T) {
	svc, db := newCartService(t)
	first := seedProduct(t, db, 1, "keripik", 10)
	other := seedProduct(t, db, 2, "kopi", 10)

	if _, err := svc.AddItem(100, first.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := svc.AddItem(100, other.ID, 1); !errors.Is(err, ErrDifferentSeller) {
		t.Fatalf("expected ErrDifferentSeller, got %v", err)
	}

	// 购物车保持原样
	entries, err := svc.ListByUser(100)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ProductID != first.ID {
		t.Fatalf("cart must stay unchanged, got %+v", entries)
	}
}

func TestAddItemStockExceeded(t *testing.T) {
	svc, db := newCartService(t)
	product := seedProduct(t, db, 1, "batik", 2)

	if _, err := svc.AddItem(100, product.ID, 3); !errors.Is(err, ErrStockExceeded) {
		t.Fatalf("expected ErrStockExceeded, got %v", err)
	}
}

func TestIncreaseSingleStep(t *testing.T) {
	svc, db := newCartService(t)
	product := seedProduct(t, db, 1, "keripik", 3)
	entry, err := svc.AddItem(100, product.ID, 1)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	updated, err := svc.Increase(100, entry.ID)
	if err != nil {
		t.Fatalf("Increase failed: %v", err)
	}
	if updated.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", updated.Quantity)
	}

	if _, err := svc.Increase(100, entry.ID); err != nil {
		t.Fatalf("Increase to stock limit failed: %v", err)
	}
	if _, err := svc.Increase(100, entry.ID); !errors.Is(err, ErrStockExceeded) {
		t.Fatalf("expected ErrStockExceeded, got %v", err)
	}
}

func TestDecreaseToZeroDeletes(t *testing.T) {
	svc, db := newCartService(t)
	product := seedProduct(t, db, 1, "keripik", 10)
	entry, err := svc.AddItem(100, product.ID, 1)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	removed, err := svc.Decrease(100, entry.ID)
	if err != nil {
		t.Fatalf("Decrease failed: %v", err)
	}
	if removed != nil {
		t.Fatalf("expected entry removal, got %+v", removed)
	}
	entries, err := svc.ListByUser(100)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty cart, got %+v", entries)
	}
}

func TestIncreaseUnknownEntry(t *testing.T) {
	svc, _ := newCartService(t)
	if _, err := svc.Increase(100, 999); !errors.Is(err, ErrCartEntryNotFound) {
		t.Fatalf("expected ErrCartEntryNotFound, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, db := newCartService(t)
	product := seedProduct(t, db, 1, "keripik", 10)
	entry, err := svc.AddItem(100, product.ID, 1)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := svc.Remove(100, entry.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := svc.Remove(100, entry.ID); err != nil {
		t.Fatalf("second Remove should be a no-op, got %v", err)
	}
}

func TestClearThenCrossSellerAddAllowed(t *testing.T) {
	svc, db := newCartService(t)
	first := seedProduct(t, db, 1, "keripik", 10)
	other := seedProduct(t, db, 2, "kopi", 10)

	if _, err := svc.AddItem(100, first.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := svc.Clear(100); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := svc.AddItem(100, other.ID, 1); err != nil {
		t.Fatalf("add after clear should succeed, got %v", err)
	}
}

func TestListPrunesInactiveProducts(t *testing.T) {
	svc, db := newCartService(t)
	product := seedProduct(t, db, 1, "keripik", 10)
	if _, err := svc.AddItem(100, product.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	entries, err := svc.ListByUser(100)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("inactive products must be pruned, got %+v", entries)
	}
}
