package models

import (
	"time"

	"gorm.io/gorm"
)

// 订单状态
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusShipped        = "shipped"
	OrderStatusCompleted      = "completed"
	OrderStatusCanceled       = "canceled"
)

// Order 订单表
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                         // 主键
	OrderNo     string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_no"`        // 订单号
	UserID      uint           `gorm:"not null;index" json:"user_id"`                                // 用户ID
	SellerID    uint           `gorm:"not null;index" json:"seller_id"`                              // 卖家ID（单卖家订单）
	TotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`    // 订单总额
	Status      string         `gorm:"type:varchar(30);not null;default:'pending_payment';index" json:"status"` // 订单状态
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单明细
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细表
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                   // 主键
	OrderID     uint      `gorm:"not null;index" json:"order_id"`                         // 订单ID
	ProductID   uint      `gorm:"not null;index" json:"product_id"`                       // 商品ID
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`         // 下单时商品名称快照
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 下单时单价快照
	Quantity    int       `gorm:"not null" json:"quantity"`                               // 数量
	CreatedAt   time.Time `json:"created_at"`                                             // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
