package router

import (
	"github.com/harber-marketplace/harber-client/internal/config"
	"github.com/harber-marketplace/harber-client/internal/http/handlers"
	"github.com/harber-marketplace/harber-client/internal/logger"
	"github.com/harber-marketplace/harber-client/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		apiV1.POST("/auth/token", handler.IssueToken)
		apiV1.GET("/products", handler.GetProducts)
		apiV1.GET("/products/:product_id", handler.GetProduct)
		apiV1.GET("/categories", handler.GetCategories)

		// 用户接口（Bearer Token）
		user := apiV1.Group("")
		user.Use(UserAuthMiddleware(c.TokenService))
		{
			// POST /cart/add 与 /cart/:cart_item_id/* 在路由树上共用参数段
			user.GET("/cart", handler.GetCart)
			user.POST("/cart/:cart_item_id", handler.AddCartItem)
			user.POST("/cart/:cart_item_id/:action", handler.MutateCartItem)
			user.DELETE("/cart/:cart_item_id", handler.DeleteCartItem)
			user.DELETE("/cart", handler.ClearCart)

			user.POST("/orders", handler.CreateOrder)
			user.GET("/orders", handler.GetOrders)
			user.GET("/orders/:order_no", handler.GetOrder)
		}
	}

	return r
}
