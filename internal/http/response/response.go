package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 业务错误类型（客户端按 error_type 区分业务拒绝与普通失败）
const (
	ErrorTypeDifferentSeller = "different_seller"
)

// DataResponse 成功响应结构
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Message   string `json:"message"`              // 提示消息
	ErrorType string `json:"error_type,omitempty"` // 业务错误类型（可选）
	RequestID string `json:"request_id,omitempty"` // 请求追踪ID
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// Error 错误响应
func Error(c *gin.Context, status int, message string) {
	ErrorWithType(c, status, message, "")
}

// ErrorWithType 带业务错误类型的错误响应
func ErrorWithType(c *gin.Context, status int, message, errorType string) {
	c.JSON(status, ErrorResponse{
		Message:   message,
		ErrorType: errorType,
		RequestID: requestID(c),
	})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Internal 500 响应
func Internal(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
