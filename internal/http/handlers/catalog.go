package handlers

import (
	"strconv"

	"github.com/harber-marketplace/harber-client/internal/http/response"
	"github.com/harber-marketplace/harber-client/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetProducts 商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	query := repository.ProductQuery{
		Keyword: c.Query("q"),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			query.CategoryID = uint(id)
		}
	}
	if raw := c.Query("seller_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			query.SellerID = uint(id)
		}
	}
	products, err := h.ProductService.List(query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, products)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	raw := c.Param("product_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.ProductService.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, categories)
}
