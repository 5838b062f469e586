package handlers

import (
	"github.com/harber-marketplace/harber-client/internal/http/response"
	"github.com/harber-marketplace/harber-client/internal/provider"
	"github.com/harber-marketplace/harber-client/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 开发服务 HTTP 处理器
type Handler struct {
	CartService     *service.CartService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	OrderService    *service.OrderService
	TokenService    *service.TokenService
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{
		CartService:     c.CartService,
		ProductService:  c.ProductService,
		CategoryService: c.CategoryService,
		OrderService:    c.OrderService,
		TokenService:    c.TokenService,
	}
}

// getUserID 读取鉴权中间件写入的用户ID
func getUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "missing user identity")
		c.Abort()
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		response.Unauthorized(c, "invalid user identity")
		c.Abort()
		return 0, false
	}
	return userID, true
}
