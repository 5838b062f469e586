package handlers

import (
	"errors"
	"net/http"

	"github.com/harber-marketplace/harber-client/internal/http/response"
	"github.com/harber-marketplace/harber-client/internal/logger"
	"github.com/harber-marketplace/harber-client/internal/service"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target    error
	status    int
	message   string
	errorType string
}

var serviceErrorMappings = []errorMapping{
	{target: service.ErrDifferentSeller, status: http.StatusConflict, message: "cart holds items from a different seller", errorType: response.ErrorTypeDifferentSeller},
	{target: service.ErrInvalidCartItem, status: http.StatusBadRequest, message: "invalid cart item"},
	{target: service.ErrProductNotAvailable, status: http.StatusBadRequest, message: "product not available"},
	{target: service.ErrStockExceeded, status: http.StatusBadRequest, message: "quantity exceeds product stock"},
	{target: service.ErrCartEntryNotFound, status: http.StatusNotFound, message: "cart entry not found"},
	{target: service.ErrCartEmpty, status: http.StatusBadRequest, message: "cart is empty"},
	{target: service.ErrInvalidToken, status: http.StatusUnauthorized, message: "invalid token"},
}

// respondServiceError 将业务错误映射为响应，未知错误按 500 处理
func respondServiceError(c *gin.Context, err error) {
	for _, mapping := range serviceErrorMappings {
		if errors.Is(err, mapping.target) {
			response.ErrorWithType(c, mapping.status, mapping.message, mapping.errorType)
			return
		}
	}
	logger.Errorw("request_failed",
		"path", c.Request.URL.Path,
		"error", err,
	)
	response.Internal(c, "internal error")
}
