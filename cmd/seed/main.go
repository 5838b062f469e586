package main

import (
	"fmt"

	"github.com/harber-marketplace/harber-client/internal/config"
	"github.com/harber-marketplace/harber-client/internal/logger"
	"github.com/harber-marketplace/harber-client/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Slug: "makanan", Name: "Makanan", SortOrder: 1},
		{Slug: "minuman", Name: "Minuman", SortOrder: 2},
		{Slug: "kerajinan", Name: "Kerajinan", SortOrder: 3},
	}
	for i := range categories {
		if err := models.DB.Where("slug = ?", categories[i].Slug).
			FirstOrCreate(&categories[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", categories[i].Slug, err)
		}
	}

	// 添加卖家
	sellers := []models.Seller{
		{ShopName: "Warung Bu Sari", City: "Yogyakarta", IsActive: true},
		{ShopName: "Kopi Nusantara", City: "Bandung", IsActive: true},
		{ShopName: "Batik Harapan", City: "Solo", IsActive: true},
	}
	for i := range sellers {
		if err := models.DB.Where("shop_name = ?", sellers[i].ShopName).
			FirstOrCreate(&sellers[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed seller %s: %v", sellers[i].ShopName, err)
		}
	}

	// 添加商品
	products := []models.Product{
		{
			SellerID:    sellers[0].ID,
			CategoryID:  categories[0].ID,
			Slug:        "keripik-tempe",
			Name:        "Keripik Tempe",
			Description: "Keripik tempe renyah khas Yogyakarta",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(15000)),
			Stock:       50,
			IsActive:    true,
			SortOrder:   1,
		},
		{
			SellerID:    sellers[0].ID,
			CategoryID:  categories[0].ID,
			Slug:        "bakpia-pathok",
			Name:        "Bakpia Pathok",
			Description: "Bakpia isi kacang hijau, satu kotak isi 20",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(35000)),
			Stock:       30,
			IsActive:    true,
			SortOrder:   2,
		},
		{
			SellerID:    sellers[1].ID,
			CategoryID:  categories[1].ID,
			Slug:        "kopi-arabika-gayo",
			Name:        "Kopi Arabika Gayo 250g",
			Description: "Biji kopi arabika single origin dari dataran tinggi Gayo",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(85000)),
			Stock:       20,
			IsActive:    true,
			SortOrder:   1,
		},
		{
			SellerID:    sellers[2].ID,
			CategoryID:  categories[2].ID,
			Slug:        "batik-tulis-parang",
			Name:        "Batik Tulis Motif Parang",
			Description: "Kain batik tulis 2 meter, pewarna alami",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(450000)),
			Stock:       5,
			IsActive:    true,
			SortOrder:   1,
		},
	}
	for i := range products {
		if err := models.DB.Where("slug = ?", products[i].Slug).
			FirstOrCreate(&products[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", products[i].Slug, err)
		}
	}

	fmt.Printf("Seed done: %d categories, %d sellers, %d products\n",
		len(categories), len(sellers), len(products))
}
