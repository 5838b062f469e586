package service

import "errors"

// 业务错误（handler 层通过 errors.Is 映射为响应）
var (
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrProductNotAvailable = errors.New("product not available")
	ErrDifferentSeller     = errors.New("cart holds items from a different seller")
	ErrStockExceeded       = errors.New("quantity exceeds product stock")
	ErrCartEntryNotFound   = errors.New("cart entry not found")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInvalidToken        = errors.New("invalid token")
)
