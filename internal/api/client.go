package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiV1Path = "/api/v1"

// 远端业务错误类型
const (
	ErrorTypeDifferentSeller = "different_seller"
)

// Error 远端 API 结构化错误
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	ErrorType  string `json:"error_type,omitempty"`
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.ErrorType)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsDifferentSeller 判断是否为跨卖家业务拒绝
func IsDifferentSeller(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.ErrorType == ErrorTypeDifferentSeller
}

// TokenProvider 提供请求用 Bearer Token（令牌维护由认证端负责）
type TokenProvider interface {
	Token() string
}

// StaticToken 固定令牌实现
type StaticToken string

// Token 返回固定令牌
func (t StaticToken) Token() string {
	return string(t)
}

// CartSeller 远端购物车卖家摘要
type CartSeller struct {
	ID       uint   `json:"id"`
	ShopName string `json:"shop_name"`
}

// CartCategory 远端购物车分类摘要
type CartCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CartProduct 远端购物车商品快照（价格以字符串下发）
type CartProduct struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       string        `json:"price"`
	ImageURL    string        `json:"image_url"`
	Stock       int           `json:"stock"`
	SellerID    uint          `json:"seller_id"`
	Seller      *CartSeller   `json:"seller,omitempty"`
	Category    *CartCategory `json:"category,omitempty"`
}

// CartEntry 远端购物车项
type CartEntry struct {
	ID       uint        `json:"id"`
	Quantity int         `json:"quantity"`
	Product  CartProduct `json:"product"`
}

// Product 远端商品
type Product struct {
	ID          uint          `json:"id"`
	SellerID    uint          `json:"seller_id"`
	CategoryID  uint          `json:"category_id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	ImageURL    string        `json:"image_url"`
	Stock       int           `json:"stock"`
	Seller      *CartSeller   `json:"seller,omitempty"`
	Category    *CartCategory `json:"category,omitempty"`
}

// Category 远端分类
type Category struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Order 远端订单
type Order struct {
	ID          uint        `json:"id"`
	OrderNo     string      `json:"order_no"`
	SellerID    uint        `json:"seller_id"`
	TotalAmount string      `json:"total_amount"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items,omitempty"`
}

// OrderItem 远端订单明细
type OrderItem struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

// Config 客户端配置
type Config struct {
	BaseURL        string
	TimeoutSeconds int
	TokenProvider  TokenProvider
}

// Client 远端商城 API 客户端
type Client struct {
	httpClient    *http.Client
	baseURL       string
	tokenProvider TokenProvider
}

// NewClient 创建 API 客户端
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       baseURL,
		tokenProvider: cfg.TokenProvider,
	}, nil
}

// FetchCart 拉取权威购物车
func (c *Client) FetchCart(ctx context.Context) ([]CartEntry, error) {
	var entries []CartEntry
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddToCart 添加商品
func (c *Client) AddToCart(ctx context.Context, productID uint, quantity int) error {
	body := map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}
	return c.do(ctx, http.MethodPost, "/cart/add", body, nil)
}

// IncreaseQuantity 数量加一（单步）
func (c *Client) IncreaseQuantity(ctx context.Context, entryID uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/cart/%d/increase", entryID), nil, nil)
}

// DecreaseQuantity 数量减一（单步）
func (c *Client) DecreaseQuantity(ctx context.Context, entryID uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/cart/%d/decrease", entryID), nil, nil)
}

// RemoveFromCart 删除购物车项
func (c *Client) RemoveFromCart(ctx context.Context, entryID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", entryID), nil, nil)
}

// ClearCart 清空购物车
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}

// ListProducts 商品列表
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct 商品详情
func (c *Client) GetProduct(ctx context.Context, productID uint) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories 分类列表
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateOrder 以当前购物车结算下单
func (c *Client) CreateOrder(ctx context.Context) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// IssueToken 为指定用户签发开发用 Bearer Token
func (c *Client) IssueToken(ctx context.Context, userID uint) (string, error) {
	body := map[string]interface{}{"user_id": userID}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/token", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// do 执行请求并解包 {data} 响应
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request failed: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiV1Path+path, reader)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenProvider != nil {
		if token := c.tokenProvider.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
			if apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode response data failed: %w", err)
	}
	return nil
}
