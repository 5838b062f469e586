package cart

import (
	"github.com/harber-marketplace/harber-client/internal/api"
	"github.com/harber-marketplace/harber-client/internal/logger"
	"github.com/harber-marketplace/harber-client/internal/models"
)

// 卖家名称缺失时的占位店铺名
const defaultShopName = "Toko"

// Seller 购物车卖家标识
type Seller struct {
	ID       uint   `json:"id"`
	ShopName string `json:"shop_name"`
}

// Category 购物车分类（不参与任何约束）
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Item 本地购物车项
type Item struct {
	ID          uint         `json:"id"` // 远端购物车项主键（同步前为 0）
	ProductID   uint         `json:"product_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url"`
	Quantity    int          `json:"quantity"`
	Stock       int          `json:"stock"`
	Seller      Seller       `json:"seller"`
	Category    *Category    `json:"category,omitempty"`
}

// Candidate 待加入购物车的商品（尚无数量）
type Candidate struct {
	ProductID   uint         `json:"product_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url"`
	Stock       int          `json:"stock"`
	Seller      Seller       `json:"seller"`
	Category    *Category    `json:"category,omitempty"`
}

// CandidateFromProduct 由商品列表项构造候选
func CandidateFromProduct(product api.Product) Candidate {
	price, err := models.NewMoneyFromString(product.Price)
	if err != nil {
		logger.Warnw("product_price_parse_failed", "product_id", product.ID, "raw", product.Price)
	}
	candidate := Candidate{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       price,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		Seller:      Seller{ID: product.SellerID, ShopName: defaultShopName},
	}
	if product.Seller != nil {
		candidate.Seller = Seller{ID: product.Seller.ID, ShopName: product.Seller.ShopName}
	}
	if product.Category != nil {
		candidate.Category = &Category{ID: product.Category.ID, Name: product.Category.Name}
	}
	return candidate
}

// itemFromEntry 将远端购物车项映射为本地项（价格字符串转数字，卖家缺名补占位）
func itemFromEntry(entry api.CartEntry) Item {
	price, err := models.NewMoneyFromString(entry.Product.Price)
	if err != nil {
		logger.Warnw("cart_price_parse_failed", "entry_id", entry.ID, "raw", entry.Product.Price)
	}
	item := Item{
		ID:          entry.ID,
		ProductID:   entry.Product.ID,
		Name:        entry.Product.Name,
		Description: entry.Product.Description,
		Price:       price,
		ImageURL:    entry.Product.ImageURL,
		Quantity:    entry.Quantity,
		Stock:       entry.Product.Stock,
		Seller:      Seller{ID: entry.Product.SellerID, ShopName: defaultShopName},
	}
	if entry.Product.Seller != nil {
		item.Seller = Seller{ID: entry.Product.Seller.ID, ShopName: entry.Product.Seller.ShopName}
		if item.Seller.ShopName == "" {
			item.Seller.ShopName = defaultShopName
		}
	}
	if entry.Product.Category != nil {
		item.Category = &Category{ID: entry.Product.Category.ID, Name: entry.Product.Category.Name}
	}
	return item
}

// itemFromCandidate 由候选构造数量为 1 的本地项（乐观插入，远端主键待同步）
func itemFromCandidate(candidate Candidate) Item {
	return Item{
		ProductID:   candidate.ProductID,
		Name:        candidate.Name,
		Description: candidate.Description,
		Price:       candidate.Price,
		ImageURL:    candidate.ImageURL,
		Quantity:    1,
		Stock:       candidate.Stock,
		Seller:      candidate.Seller,
		Category:    candidate.Category,
	}
}
