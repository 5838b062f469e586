package models

import "time"

// CartSnapshot 客户端购物车快照（本地持久化，整状态覆盖写入）
type CartSnapshot struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                // 主键
	Profile   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"profile"` // 快照归属（多账号隔离）
	Payload   string    `gorm:"type:text;not null" json:"payload"`                   // 序列化后的购物车项
	UpdatedAt time.Time `json:"updated_at"`                                          // 最后写入时间
}

// TableName 指定表名
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
