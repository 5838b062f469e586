package provider

import (
	"github.com/harber-marketplace/harber-client/internal/config"
	"github.com/harber-marketplace/harber-client/internal/models"
	"github.com/harber-marketplace/harber-client/internal/repository"
	"github.com/harber-marketplace/harber-client/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	CartRepo     repository.CartRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	OrderRepo    repository.OrderRepository

	// Services
	CartService     *service.CartService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	OrderService    *service.OrderService
	TokenService    *service.TokenService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	db := models.DB

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	cartService := service.NewCartService(cartRepo, productRepo)
	productService := service.NewProductService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, cartService)
	tokenService := service.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.ExpireHours)

	return &Container{
		Config:          cfg,
		CartRepo:        cartRepo,
		ProductRepo:     productRepo,
		CategoryRepo:    categoryRepo,
		OrderRepo:       orderRepo,
		CartService:     cartService,
		ProductService:  productService,
		CategoryService: categoryService,
		OrderService:    orderService,
		TokenService:    tokenService,
	}
}
