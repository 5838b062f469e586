package handlers

import (
	"github.com/harber-marketplace/harber-client/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateOrder 以当前购物车结算下单
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.CreateFromCart(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// GetOrders 用户订单列表
func (h *Handler) GetOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListByUser(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, orders)
}

// GetOrder 按订单号查询
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByNo(uid, c.Param("order_no"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order == nil {
		response.NotFound(c, "order not found")
		return
	}
	response.Success(c, order)
}
