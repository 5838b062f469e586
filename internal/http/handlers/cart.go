package handlers

import (
	"strconv"

	"github.com/harber-marketplace/harber-client/internal/http/response"
	"github.com/harber-marketplace/harber-client/internal/models"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 添加购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CartSellerPayload 购物车卖家摘要
type CartSellerPayload struct {
	ID       uint   `json:"id"`
	ShopName string `json:"shop_name"`
}

// CartCategoryPayload 购物车分类摘要
type CartCategoryPayload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CartProductPayload 购物车商品快照
type CartProductPayload struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Price       models.Money         `json:"price"` // 序列化为字符串
	ImageURL    string               `json:"image_url"`
	Stock       int                  `json:"stock"`
	SellerID    uint                 `json:"seller_id"`
	Seller      *CartSellerPayload   `json:"seller,omitempty"`
	Category    *CartCategoryPayload `json:"category,omitempty"`
}

// CartEntryPayload 购物车项响应
type CartEntryPayload struct {
	ID       uint               `json:"id"`
	Quantity int                `json:"quantity"`
	Product  CartProductPayload `json:"product"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	entries, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, toCartEntryPayloads(entries))
}

// AddCartItem 添加商品到购物车
// 路由上 /cart/add 与 /cart/:cart_item_id 共用参数段（gin 路由树不允许静态段与参数段并存）
func (h *Handler) AddCartItem(c *gin.Context) {
	if c.Param("cart_item_id") != "add" {
		response.NotFound(c, "not found")
		return
	}
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "bad request")
		return
	}
	entry, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"id": entry.ID, "quantity": entry.Quantity})
}

// MutateCartItem 购物车项单步增减（POST /cart/:cart_item_id/:action）
func (h *Handler) MutateCartItem(c *gin.Context) {
	action := c.Param("action")
	if action != "increase" && action != "decrease" {
		response.NotFound(c, "not found")
		return
	}
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	var entry *models.CartEntry
	var err error
	if action == "increase" {
		entry, err = h.CartService.Increase(uid, entryID)
	} else {
		entry, err = h.CartService.Decrease(uid, entryID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if entry == nil {
		response.Success(c, gin.H{"removed": true})
		return
	}
	response.Success(c, gin.H{"id": entry.ID, "quantity": entry.Quantity})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}
	if err := h.CartService.Remove(uid, entryID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

func parseEntryID(c *gin.Context) (uint, bool) {
	raw := c.Param("cart_item_id")
	entryID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || entryID == 0 {
		response.BadRequest(c, "invalid cart item id")
		return 0, false
	}
	return uint(entryID), true
}

func toCartEntryPayloads(entries []models.CartEntry) []CartEntryPayload {
	payloads := make([]CartEntryPayload, 0, len(entries))
	for _, entry := range entries {
		if entry.Product == nil {
			continue
		}
		product := CartProductPayload{
			ID:          entry.Product.ID,
			Name:        entry.Product.Name,
			Description: entry.Product.Description,
			Price:       entry.Product.PriceAmount,
			ImageURL:    entry.Product.ImageURL,
			Stock:       entry.Product.Stock,
			SellerID:    entry.Product.SellerID,
		}
		if entry.Product.Seller != nil {
			product.Seller = &CartSellerPayload{
				ID:       entry.Product.Seller.ID,
				ShopName: entry.Product.Seller.ShopName,
			}
		}
		if entry.Product.Category != nil {
			product.Category = &CartCategoryPayload{
				ID:   entry.Product.Category.ID,
				Name: entry.Product.Category.Name,
			}
		}
		payloads = append(payloads, CartEntryPayload{
			ID:       entry.ID,
			Quantity: entry.Quantity,
			Product:  product,
		})
	}
	return payloads
}
